// Package blob persists the credential as two objects in a gocloud.dev bucket
// (file:// for a local directory, mem:// for tests).
package blob

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

type credentialRepository struct {
	bucket *blob.Bucket
}

// NewCredentialRepository opens the bucket at bucketURL.
func NewCredentialRepository(ctx context.Context, bucketURL string) (repository.CredentialRepository, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &credentialRepository{bucket: bucket}, nil
}

func (r *credentialRepository) Load(ctx context.Context) (*entity.Credential, error) {
	access, err := r.read(ctx, repository.AccessTokenKey)
	if err != nil {
		return nil, err
	}
	refresh, err := r.read(ctx, repository.RefreshTokenKey)
	if err != nil {
		return nil, err
	}

	cred := entity.Credential{AccessToken: access, RefreshToken: refresh}
	if cred.IsZero() {
		return nil, nil
	}

	return &cred, nil
}

// Save writes the refresh token first and the access token last, because Load
// treats a missing access token as "no credential". If the second write fails
// the first one is rolled back.
func (r *credentialRepository) Save(ctx context.Context, credential entity.Credential) error {
	previous, err := r.read(ctx, repository.RefreshTokenKey)
	if err != nil {
		return err
	}

	if err := r.bucket.WriteAll(ctx, repository.RefreshTokenKey, []byte(credential.RefreshToken), nil); err != nil {
		return errors.Wrap(err, "failed to write refresh token")
	}

	if err := r.bucket.WriteAll(ctx, repository.AccessTokenKey, []byte(credential.AccessToken), nil); err != nil {
		if previous == "" {
			_ = r.delete(ctx, repository.RefreshTokenKey)
		} else {
			_ = r.bucket.WriteAll(ctx, repository.RefreshTokenKey, []byte(previous), nil)
		}

		return errors.Wrap(err, "failed to write access token")
	}

	return nil
}

// Clear removes the access token first so that a partial failure never leaves
// a usable access token behind.
func (r *credentialRepository) Clear(ctx context.Context) error {
	if err := r.delete(ctx, repository.AccessTokenKey); err != nil {
		return err
	}

	return r.delete(ctx, repository.RefreshTokenKey)
}

func (r *credentialRepository) Close() error {
	return errors.WithStack(r.bucket.Close())
}

func (r *credentialRepository) read(ctx context.Context, key string) (string, error) {
	data, err := r.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", key)
	}

	return string(data), nil
}

func (r *credentialRepository) delete(ctx context.Context, key string) error {
	err := r.bucket.Delete(ctx, key)
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "failed to delete %s", key)
}
