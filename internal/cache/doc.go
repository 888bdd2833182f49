// Package cache provides a byte-bounded LRU for whole blobs.
//
// Cached bytes are optionally charged against a resource.Controller, so the
// cache shares one memory budget with the rest of the process. When the
// controller refuses, the value is simply not cached.
package cache
