package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis

// NewRedis starts a shared miniredis server once and returns it.
func NewRedis() *miniredis.Miniredis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = server
	})
	return redisServer
}

// RedisURL returns a connection URL for the server.
func RedisURL(server *miniredis.Miniredis) string {
	return "redis://" + server.Addr() + "/0"
}

// ClearRedis drops every cached key.
func ClearRedis(server *miniredis.Miniredis) {
	server.FlushAll()
}
