package handlers

import (
	"bufio"
	"fmt"
	"log"
	"time"

	"github.com/biosecret/taskflow/events"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

var keepAliveInterval = 15 * time.Second

// HandleEvents godoc
// @Summary Stream task events for the session user (server-sent events)
// @Tags events
// @Produce text/event-stream
// @Success 200 {string} string
// @Failure 401 {object} map[string]string
// @Router /api/events [get]
func (h *Handler) HandleEvents(c *fiber.Ctx) error {
	user, ok := c.Locals("username").(string)
	if !ok || user == "" {
		return c.Status(401).JSON(fiber.Map{"error": "not logged in"})
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("Transfer-Encoding", "chunked")

	stateChan, cancel := h.broker.Subscribe(user)
	// closes on server shutdown only, not on client disconnect
	notify := c.Context().Done()

	log.Printf("[events] %s subscribed", user)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		done := make(chan struct{})
		defer close(done)
		defer cancel()

		go func() {
			select {
			case <-notify:
				cancel()
			case <-done:
			}
		}()

		// send headers now instead of at the first event
		fmt.Fprint(w, ":ok\n\n")
		if err := w.Flush(); err != nil {
			log.Printf("[events] %s disconnected: %v", user, err)
			return
		}

		keepAliveTicker := time.NewTicker(keepAliveInterval)
		defer keepAliveTicker.Stop()

		for {
			select {
			case ev, open := <-stateChan:
				if !open {
					return
				}
				msg, err := events.FormatSSE(string(ev.Type), ev)
				if err != nil {
					log.Printf("[events] error formatting message: %v", err)
					continue
				}
				if _, err := fmt.Fprint(w, msg); err != nil {
					log.Printf("[events] error writing: %v", err)
					return
				}
				if err := w.Flush(); err != nil {
					log.Printf("[events] %s disconnected: %v", user, err)
					return
				}
			case <-keepAliveTicker.C:
				fmt.Fprint(w, ":keepalive\n\n")
				if err := w.Flush(); err != nil {
					log.Printf("[events] %s disconnected: %v", user, err)
					return
				}
			}
		}
	}))

	return nil
}
