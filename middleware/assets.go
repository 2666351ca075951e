package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"sync"
)

// Static assets whose URLs carry a content hash for cache busting
const (
	AssetCSS     = "static/css/site.css"
	AssetAppJS   = "static/js/app.js"
	AssetFavicon = "static/images/favicon.png"
)

var (
	assetVersions   = map[string]string{}
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(paths ...string) {
	if len(paths) == 0 {
		paths = []string{AssetCSS, AssetAppJS, AssetFavicon}
	}

	assetVersionsMu.Lock()
	defer assetVersionsMu.Unlock()

	for _, path := range paths {
		version := computeFileHash(path)
		if version == "" {
			version = "1"
		}
		assetVersions[path] = version
		log.Printf("[INFO] Asset version initialized: %s=%s", path, version)
	}
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	// Return first 8 chars of the hash for brevity
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the version hash of a static file, "1" when unknown
func AssetVersion(path string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if version, ok := assetVersions[path]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the public URL of a static file with its version query
func AssetURL(path string) string {
	return "/" + path + "?v=" + AssetVersion(path)
}
