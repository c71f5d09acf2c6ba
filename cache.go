package main

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"hash/fnv"
	"io/fs"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/groupcache"

	"github.com/alibstrd/dzulfikar-ali/post"
)

var (
	postCache         *groupcache.Group
	postCacheDuration time.Duration
)

// initPostCache initializes the post cache of the given size and expiry.
// The cache holds the gob-encoded result of scanning the posts folder so
// that page renders do not hit the disk on every request.
func initPostCache(cacheBytes int64, cacheDuration time.Duration) {
	postCacheDuration = cacheDuration
	postCache = groupcache.NewGroup("loadPosts", cacheBytes, groupcache.GetterFunc(
		func(ctx context.Context, key string, dest groupcache.Sink) error {
			posts, err := store.Load()
			if err != nil {
				// A missing posts folder serves an empty blog.
				if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("loadPosts group: %w", err)
				}
				posts = nil
			}
			var buf bytes.Buffer
			err = gob.NewEncoder(&buf).Encode(posts)
			if err != nil {
				return fmt.Errorf("loadPosts group: %w", err)
			}
			dest.SetBytes(buf.Bytes())
			return nil
		}))
}

// cachedPosts wraps the post store's Load and provides caching.
func cachedPosts() (post.Posts, error) {
	var (
		data  []byte
		q     = make(url.Values, 1)
		posts post.Posts
	)
	t := quantize(time.Now(), postCacheDuration, "posts")
	q.Set("t", strconv.FormatInt(t, 10))
	err := postCache.Get(context.Background(), q.Encode(), groupcache.AllocatingByteSliceSink(&data))
	if err != nil {
		return nil, fmt.Errorf("cachedPosts: %w", err)
	}
	err = gob.NewDecoder(bytes.NewReader(data)).Decode(&posts)
	if err != nil {
		return nil, fmt.Errorf("cachedPosts: %w", err)
	}
	return posts, nil
}

// quantize buckets t into intervals of d, offset by a hash of salt so
// that cache entries do not all expire at the same instant. A zero
// duration disables expiry.
func quantize(t time.Time, d time.Duration, salt string) int64 {
	if d == 0 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(salt))
	return (t.UnixNano() + int64(h.Sum32())%int64(d)) / int64(d)
}
