package fakeapi

import (
	"encoding/json"
	"mime/multipart"
	"path"
	"strconv"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// formValues reads a multipart body field by field and collects field errors.
type formValues struct {
	values map[string][]string
	files  map[string][]*multipart.FileHeader
	errs   map[string][]string
}

func parseForm(c echo.Context) (*formValues, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	return &formValues{values: mf.Value, files: mf.File}, nil
}

func (f *formValues) fail(name, msg string) {
	if f.errs == nil {
		f.errs = make(map[string][]string)
	}
	f.errs[name] = append(f.errs[name], msg)
}

// require records a "required" error for each missing field.
func (f *formValues) require(names ...string) {
	for _, name := range names {
		if v, ok := f.str(name); !ok || v == "" {
			f.fail(name, "This field is required.")
		}
	}
}

func (f *formValues) str(name string) (string, bool) {
	v, ok := f.values[name]
	if !ok || len(v) == 0 {
		return "", false
	}

	return v[0], true
}

func (f *formValues) setString(dst *string, name string, maxLen int) {
	v, ok := f.str(name)
	if !ok {
		return
	}
	if maxLen > 0 && len(v) > maxLen {
		f.fail(name, "Ensure this field has no more than "+strconv.Itoa(maxLen)+" characters.")
		return
	}
	*dst = v
}

func (f *formValues) setID(dst *int64, name string) {
	v, ok := f.str(name)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		f.fail(name, "Incorrect type. Expected pk value.")
		return
	}
	*dst = id
}

func (f *formValues) setBool(dst *bool, name string) {
	v, ok := f.str(name)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		f.fail(name, "Must be a valid boolean.")
		return
	}
	*dst = b
}

func (f *formValues) setDecimal(dst *string, name string) {
	v, ok := f.str(name)
	if !ok {
		return
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n < 0 {
		f.fail(name, "A valid number is required.")
		return
	}
	*dst = strconv.FormatFloat(n, 'f', 2, 64)
}

func (f *formValues) setObject(dst *map[string]any, name string) {
	v, ok := f.str(name)
	if !ok {
		return
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(v), &obj); err != nil {
		f.fail(name, "Value must be valid JSON.")
		return
	}
	*dst = obj
}

// setFile stores the media URL of an uploaded file part.
func (f *formValues) setFile(dst *string, name, folder string) {
	if fh := f.files[name]; len(fh) > 0 {
		*dst = path.Join("/media", folder, fh[0].Filename)
	}
}

// images turns every "images" part into an Image; the first one is primary.
func (f *formValues) images(folder string, nextID func() int64) []entity.Image {
	var out []entity.Image
	for i, fh := range f.files["images"] {
		out = append(out, entity.Image{
			ID:        nextID(),
			Image:     path.Join("/media", folder, fh.Filename),
			IsPrimary: i == 0,
		})
	}

	return out
}
