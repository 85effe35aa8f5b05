// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trace

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestConf_SetDefaults(t *testing.T) {
	c := Conf{Exporter: "OTLP-HTTP", SampleRatio: 3}
	c.SetDefaults()
	assert.Equal(t, ExporterHTTP, c.Exporter)
	assert.Equal(t, "localhost:4318", c.Endpoint)
	assert.Equal(t, 1.0, c.SampleRatio)
	assert.Equal(t, "mentorship", c.ServiceName)
}

func TestInitTracerProvider_Disabled(t *testing.T) {
	shutdown, err := InitTracerProvider(context.Background(), Conf{})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	_, span := otel.Tracer("t").Start(context.Background(), "noop")
	assert.False(t, span.IsRecording())
	span.End()
}

func TestInitTracerProvider_UnknownExporter(t *testing.T) {
	_, err := InitTracerProvider(context.Background(), Conf{Enabled: true, Exporter: "zipkin"})
	assert.Error(t, err)
}

func TestFiberMiddleware(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	app := fiber.New()
	app.Use(FiberMiddleware())
	var inner trace.SpanContext
	app.Get("/x", func(c *fiber.Ctx) error {
		inner = trace.SpanContextFromContext(c.UserContext())
		return c.SendStatus(fiber.StatusInternalServerError)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/x", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /x", spans[0].Name())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext().TraceID().String())
	assert.Equal(t, spans[0].SpanContext().SpanID(), inner.SpanID())
}
