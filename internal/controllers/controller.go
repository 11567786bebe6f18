package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"vtpartner/internal/apperr"
	"vtpartner/internal/cache"
	"vtpartner/internal/logger"
	"vtpartner/internal/middleware"
	"vtpartner/internal/registration"
	"vtpartner/internal/store"
	"vtpartner/internal/validate"
)

// Controller holds the dependencies every handler shares.
type Controller struct {
	store        store.Store
	registration *registration.Service
	jwt          *middleware.JWT
	cache        *cache.Cache
}

// New wires a Controller. cache may be nil.
func New(s store.Store, jwt *middleware.JWT, c *cache.Cache) *Controller {
	return &Controller{
		store:        s,
		registration: registration.NewService(s),
		jwt:          jwt,
		cache:        c,
	}
}

// bind decodes and validates the JSON body into dst. An empty body is
// validated as {} so every required field is named.
func bind(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(dst)
	}
	if err != nil {
		fail(c, validate.Error(err))
		return false
	}
	return true
}

// fail writes err as {"message": ...}. Server-side causes are logged, never returned.
func fail(c *gin.Context, err error) {
	failWith(c, err, nil)
}

func failWith(c *gin.Context, err error, extra gin.H) {
	status := apperr.Status(err)
	body := gin.H{"message": apperr.Message(err)}
	for k, v := range extra {
		body[k] = v
	}

	var e *apperr.Error
	if errors.As(err, &e) && len(e.Fields) > 0 {
		body["missing_fields"] = e.Fields
	}
	if status >= http.StatusInternalServerError {
		logger.FromGin(c).WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	c.JSON(status, body)
}

// storeError maps a store failure onto the client-facing taxonomy.
func storeError(err error, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound()
	}
	return apperr.Internal(msg, err)
}

func respondList[T any](c *gin.Context, key string, rows []T, err error) {
	if err != nil {
		fail(c, storeError(err, "An error occurred while fetching "+key))
		return
	}
	c.JSON(http.StatusOK, gin.H{key: rows})
}

// cachedList serves a catalog listing from the cache when possible and fills it on a miss.
func cachedList[T any](c *gin.Context, cc *cache.Cache, cacheKey, key string, load func(context.Context) ([]T, error)) {
	ctx := c.Request.Context()
	var rows []T
	if cc.Get(ctx, cacheKey, &rows) {
		c.JSON(http.StatusOK, gin.H{key: rows})
		return
	}
	rows, err := load(ctx)
	if err == nil {
		cc.Set(ctx, cacheKey, rows)
	}
	respondList(c, key, rows, err)
}

// Healthz reports liveness.
func (ctl *Controller) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
