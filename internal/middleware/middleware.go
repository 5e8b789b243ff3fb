package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORS добавляет заголовки CORS
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SecurityHeaders добавляет базовые заголовки безопасности
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Next()
	}
}

// rateLimiter хранит лимитеры по клиентским IP
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// RateLimit ограничивает частоту запросов для каждого клиентского IP.
// Используется token bucket: requestsPerHour пополнений в час с запасом burst.
func RateLimit(requestsPerHour, burst int) gin.HandlerFunc {
	limiter := &rateLimiter{
		clients: make(map[string]*rate.Limiter),
		limit:   rate.Limit(float64(requestsPerHour) / 3600.0),
		burst:   burst,
	}

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Превышен лимит запросов, попробуйте позже",
			})
			return
		}
		c.Next()
	}
}

// allow проверяет лимит для клиентского IP, создавая лимитер при первом запросе
func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	limiter, ok := rl.clients[clientIP]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.clients[clientIP] = limiter
	}
	rl.mu.Unlock()

	return limiter.Allow()
}
