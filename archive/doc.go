// Package archive persists compressed sparse matrices in a blob store.
//
// Matrices are encoded with the codec package and stored under their name
// plus the ".smx" extension. Any blobstore.BlobStore works, including the
// S3, MinIO and DynamoDB-versioned stores.
//
//	arc := archive.New(blobstore.NewLocalStore(dir), archive.WithCompression(codec.CompressionZSTD))
//	if err := arc.PutMatrix(ctx, "jacobian", m); err != nil { ... }
//	c, err := arc.Get(ctx, "jacobian")
//
// PutAll and GetAll fan out over a bounded number of workers, and an
// optional byte rate limit throttles traffic to the store.
package archive
