package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid       = "pid"
	TagLatency   = "latency"
	TagStatus    = "status"
	TagMethod    = "method"
	TagPath      = "path"
	TagURL       = "url"
	TagIP        = "ip"
	TagBody      = "body"
	TagResBody   = "resBody"
	TagUserAgent = "user_agent"
	RequestID    = "request_id"
)

// тело ответа обрезается, выгрузки файлов в лог не пишем
const maxBodyLen = 2048

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, _ *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return cut(string(c.Body()))
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			if c.Response().IsBodyStream() {
				return ""
			}
			return cut(string(c.Response().Body()))
		},
		TagUserAgent: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID, c.Get(fiber.HeaderXRequestID))
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func cut(value string) string {
	if len(value) > maxBodyLen {
		return value[:maxBodyLen] + "..."
	}
	return value
}
