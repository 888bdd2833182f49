// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("matrices/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	arc := archive.New(store)
//
// # Features
//
//   - CRC32C-checked single-request puts for small blobs
//   - Multipart uploads for large blobs
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - CommitStore: versioned blobs with a DynamoDB commit pointer
package s3
