package archive

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/supermatrix"
	"github.com/hupe1980/supermatrix/blobstore"
	"github.com/hupe1980/supermatrix/codec"
	"github.com/hupe1980/supermatrix/internal/resource"
	"github.com/hupe1980/supermatrix/sparse"
)

// Ext is appended to matrix names to form blob names.
const Ext = ".smx"

// Archive stores sparse matrices in a blob store.
// It is safe for concurrent use if the underlying store is.
type Archive struct {
	store       blobstore.BlobStore
	compression codec.Compression
	rc          *resource.Controller
	logger      *supermatrix.Logger
}

// New creates an Archive over store.
func New(store blobstore.BlobStore, optFns ...Option) *Archive {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Archive{
		store:       store,
		compression: opts.compression,
		rc: resource.NewController(resource.Config{
			MaxBackgroundWorkers: opts.concurrency,
			IOLimitBytesPerSec:   opts.ioLimit,
		}),
		logger: opts.logger,
	}
}

// Put encodes c and stores it under name, replacing any previous matrix.
func (a *Archive) Put(ctx context.Context, name string, c *sparse.Compressed) error {
	data, err := codec.Marshal(c, codec.WithCompression(a.compression))
	if err != nil {
		return fmt.Errorf("archive: encode %q: %w", name, err)
	}

	if err := a.rc.AcquireIO(ctx, len(data)); err != nil {
		return err
	}

	if err := a.store.Put(ctx, name+Ext, data); err != nil {
		return fmt.Errorf("archive: put %q: %w", name, err)
	}

	a.logger.Debug("matrix stored",
		"name", name,
		"nonzeros", c.Nonzeros,
		"bytes", len(data),
	)
	return nil
}

// PutMatrix converts m with supermatrix.ToCompressed and stores the result.
// m stays owned by the caller. Conversion errors are returned unchanged, so
// errors.Is(err, supermatrix.ErrNotApplicable) works.
func (a *Archive) PutMatrix(ctx context.Context, name string, m *supermatrix.Matrix) error {
	c, err := supermatrix.ToCompressed(m)
	if err != nil {
		return err
	}
	return a.Put(ctx, name, c)
}

// Get loads the matrix stored under name.
// It returns an error matching blobstore.ErrNotFound if there is none.
func (a *Archive) Get(ctx context.Context, name string) (*sparse.Compressed, error) {
	data, err := a.store.Get(ctx, name+Ext)
	if err != nil {
		return nil, fmt.Errorf("archive: get %q: %w", name, err)
	}

	if err := a.rc.AcquireIO(ctx, len(data)); err != nil {
		return nil, err
	}

	c, err := codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("archive: decode %q: %w", name, err)
	}
	return c, nil
}

// Delete removes the matrix stored under name. Missing matrices are ignored.
func (a *Archive) Delete(ctx context.Context, name string) error {
	if err := a.store.Delete(ctx, name+Ext); err != nil {
		return fmt.Errorf("archive: delete %q: %w", name, err)
	}
	return nil
}

// List returns the sorted names of stored matrices starting with prefix.
func (a *Archive) List(ctx context.Context, prefix string) ([]string, error) {
	blobs, err := a.store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}

	names := make([]string, 0, len(blobs))
	for _, b := range blobs {
		if name, ok := strings.CutSuffix(b, Ext); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// PutAll stores every matrix in items. It stops at the first error.
func (a *Archive) PutAll(ctx context.Context, items map[string]*sparse.Compressed) error {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	slices.Sort(names)

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		if err := a.rc.AcquireBackground(gctx); err != nil {
			break
		}
		g.Go(func() error {
			defer a.rc.ReleaseBackground()
			return a.Put(gctx, name, items[name])
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// GetAll loads the named matrices. The result is parallel to names.
func (a *Archive) GetAll(ctx context.Context, names []string) ([]*sparse.Compressed, error) {
	out := make([]*sparse.Compressed, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		if err := a.rc.AcquireBackground(gctx); err != nil {
			break
		}
		g.Go(func() error {
			defer a.rc.ReleaseBackground()
			c, err := a.Get(gctx, name)
			if err != nil {
				return err
			}
			out[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
