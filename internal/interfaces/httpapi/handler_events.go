package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draft"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

const sseRetryMillis = 3000

// StreamDraftEvents pushes a league's live draft events as server-sent
// events. The stream ends when the client goes away or the hub drops this
// subscriber for falling behind; clients reconnect and compare sequences.
func (h *Handler) StreamDraftEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StreamDraftEvents")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if h.draftEvents == nil {
		writeError(ctx, w, fmt.Errorf("%w: draft event stream is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	if _, err := h.leagueService.RequireMember(ctx, leagueID, principal.UserID); err != nil {
		h.logger.WarnContext(ctx, "draft stream rejected", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	sub, err := h.draftEvents.Subscribe(leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "draft stream subscribe failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err))
		return
	}
	defer h.draftEvents.Unsubscribe(sub)

	rc := http.NewResponseController(w)
	_ = rc.SetWriteDeadline(time.Time{})

	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprintf(w, "retry: %d\n\n", sseRetryMillis); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		h.logger.WarnContext(ctx, "draft stream flush unsupported", "league_id", leagueID, "error", err)
		return
	}

	h.logger.InfoContext(ctx, "draft stream opened", "league_id", leagueID, "user_id", principal.UserID, "subscription_id", sub.ID())

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.DebugContext(ctx, "draft stream closed by client", "league_id", leagueID, "user_id", principal.UserID)
			return
		case <-keepalive.C:
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		case event, ok := <-sub.Events():
			if !ok {
				h.logger.InfoContext(ctx, "draft stream ended by hub", "league_id", leagueID, "user_id", principal.UserID)
				return
			}
			if err := writeSSEEvent(w, event); err != nil {
				h.logger.WarnContext(ctx, "write draft event failed", "league_id", leagueID, "sequence", event.Sequence, "error", err)
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func writeSSEEvent(w http.ResponseWriter, event draft.Event) error {
	data, err := sonic.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal draft event: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("id: ")
	buf.B = strconv.AppendUint(buf.B, event.Sequence, 10)
	_, _ = buf.WriteString("\nevent: ")
	_, _ = buf.WriteString(string(event.Type))
	_, _ = buf.WriteString("\ndata: ")
	_, _ = buf.Write(data)
	_, _ = buf.WriteString("\n\n")

	_, err = w.Write(buf.B)
	return err
}
