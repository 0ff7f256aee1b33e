package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag resolves one log field from the request context
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	ftm := map[string]FuncTag{}
	for _, tag := range cfg.Tags {
		switch tag {
		case TagPid:
			ftm[TagPid] = func(c *fiber.Ctx, d *data) interface{} { return d.pid }
		case TagStatus:
			ftm[TagStatus] = func(c *fiber.Ctx, d *data) interface{} { return c.Response().StatusCode() }
		case TagLatency:
			ftm[TagLatency] = func(c *fiber.Ctx, d *data) interface{} { return d.end.Sub(d.start).String() }
		case TagMethod:
			ftm[TagMethod] = func(c *fiber.Ctx, d *data) interface{} { return c.Method() }
		case TagPath:
			ftm[TagPath] = func(c *fiber.Ctx, d *data) interface{} { return c.Path() }
		case TagIP:
			ftm[TagIP] = func(c *fiber.Ctx, d *data) interface{} { return c.IP() }
		case TagBody:
			ftm[TagBody] = func(c *fiber.Ctx, d *data) interface{} { return string(c.Body()) }
		case TagResBody:
			ftm[TagResBody] = func(c *fiber.Ctx, d *data) interface{} { return string(c.Response().Body()) }
		case RequestID:
			ftm[RequestID] = func(c *fiber.Ctx, d *data) interface{} { return c.Get(fiber.HeaderXRequestID) }
		}
	}
	return ftm
}

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	d := new(data)
	// Set PID once
	d.pid = os.Getpid()
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		if c.Method() == "OPTIONS" {
			return err
		}

		message := getMessage(c)
		switch cfg.Logger {
		case nil:
			log.WithFields(getLogrusFields(ftm, c, d)).Info(message)
		default:
			entity := cfg.Logger.WithFields(getLogrusFields(ftm, c, d))
			if c.Response() != nil && c.Response().StatusCode() >= 300 {
				entity.Warn(message)
			} else {
				entity.Info(message)
			}
		}

		return err
	}
}

func getMessage(c *fiber.Ctx) string {
	return "api request"
}
