// Package middleware provides HTTP middleware components for the pallet service.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it. Packing results for
// large orders carry hundreds of placements, so this pays off quickly.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression)
}
