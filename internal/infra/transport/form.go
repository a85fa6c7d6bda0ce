package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"sort"
	"strconv"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// form builds a multipart/form-data body. The first error sticks.
type form struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

func newForm() *form {
	f := &form{}
	f.writer = multipart.NewWriter(&f.buf)

	return f
}

func (f *form) field(name, value string) {
	if f.err != nil || value == "" {
		return
	}
	f.err = errors.WithStack(f.writer.WriteField(name, value))
}

func (f *form) id(name string, value int64) {
	if value > 0 {
		f.field(name, strconv.FormatInt(value, 10))
	}
}

func (f *form) flag(name string, value *bool) {
	if value != nil {
		f.field(name, strconv.FormatBool(*value))
	}
}

func (f *form) object(name string, value map[string]any) {
	if f.err != nil || value == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		f.err = errors.WithStack(err)
		return
	}
	f.field(name, string(data))
}

func (f *form) file(name string, upload *entity.Upload) {
	if f.err != nil || upload == nil {
		return
	}
	if upload.Content == nil {
		f.err = errors.Errorf("upload %q has no content", upload.FileName)
		return
	}

	fileName := upload.FileName
	if fileName == "" {
		fileName = name
	}

	part, err := f.writer.CreateFormFile(name, fileName)
	if err != nil {
		f.err = errors.WithStack(err)
		return
	}
	if _, err := io.Copy(part, upload.Content); err != nil {
		f.err = errors.Wrapf(err, "failed to copy upload %q", fileName)
	}
}

func (f *form) files(name string, uploads []entity.Upload) {
	for i := range uploads {
		f.file(name, &uploads[i])
	}
}

// finish closes the writer and returns the body with its content type.
func (f *form) finish() (io.Reader, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	if err := f.writer.Close(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	return &f.buf, f.writer.FormDataContentType(), nil
}

func productForm(input entity.ProductInput, images []entity.Upload) *form {
	f := newForm()
	f.id("category", input.Category)
	f.id("brand", input.Brand)
	f.field("title", input.Title)
	f.field("description", input.Description)
	f.field("price", input.Price)
	f.field("original_price", input.OriginalPrice)
	f.field("condition", string(input.Condition))
	f.field("model", input.Model)
	f.object("specifications", input.Specifications)
	f.field("location", input.Location)
	f.flag("is_negotiable", input.IsNegotiable)
	f.flag("is_featured", input.IsFeatured)
	f.flag("is_daily_essential", input.IsDailyEssential)

	keys := make([]string, 0, len(input.Extra))
	for k := range input.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f.field(k, input.Extra[k])
	}

	f.files("images", images)

	return f
}

func shopForm(input entity.ShopInput, images []entity.Upload) *form {
	f := newForm()
	f.field("name", input.Name)
	f.field("description", input.Description)
	f.field("address", input.Address)
	f.field("phone_number", input.PhoneNumber)
	f.field("email", input.Email)
	f.field("website", input.Website)
	f.object("business_hours", input.BusinessHours)
	f.file("logo", input.Logo)
	f.file("cover_image", input.CoverImage)
	f.files("images", images)

	return f
}
