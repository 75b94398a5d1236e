package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/myacars/myacars/internal/protocol"
)

// Smartcars adapts HTTP to the protocol dispatcher: it flattens the query
// string and form body into the request model, hands off, and writes the
// reply as plain text. Domain failures are already wire sentinels by the
// time they get here, so every protocol outcome is a 200.
type Smartcars struct {
	Dispatcher *protocol.Dispatcher
	Debug      bool // dump request parameters to the log
}

// NewSmartcars constructs the handler around a dispatcher.
func NewSmartcars(d *protocol.Dispatcher, debug bool) *Smartcars {
	return &Smartcars{Dispatcher: d, Debug: debug}
}

// Handle serves the single protocol endpoint for both GET and POST.
func (h *Smartcars) Handle(c echo.Context) error {
	query := flatten(c.QueryParams())

	form := map[string]string{}
	if params, err := c.FormParams(); err == nil {
		form = flatten(params)
	}

	if h.Debug {
		log.Printf("smartcars: args=%v form=%v", query, form)
	}

	req := protocol.NewRequest(query, form)
	reply, err := h.Dispatcher.Dispatch(c.Request().Context(), req)
	if err != nil {
		return err // storage fault, surfaced as a 500 by echo
	}
	return c.String(http.StatusOK, reply)
}

// flatten keeps the first value of each parameter; the client never sends
// repeated keys.
func flatten(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
