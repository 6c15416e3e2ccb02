package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/callback"
	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/detector"
	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/extractor"
	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/metrics"
	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/session"
)

// Canned replies. The honeypot must sound human and must never reveal that
// detection happened; once a session is flagged, the reply shifts to probing
// questions that push the scammer to reveal bank/reference details.
const (
	replyProbing = "I'm worried. Which bank is this for, and can you share the reference/ticket number " +
		"from the SMS? Also tell me the official customer care number you're calling from."
	replyNeutral = "Okay. Can you share more details?"
)

// HoneypotService runs the per-message intelligence pipeline and owns the
// finalize-and-report decision.
type HoneypotService struct {
	store      session.Store
	dispatcher *callback.Dispatcher
	log        *logrus.Logger

	threshold   int
	minMessages int
}

// Result is what the adapter needs to answer an inbound message.
type Result struct {
	Reply    string
	Snapshot session.Snapshot
}

// NewHoneypotService wires the pipeline together. threshold is the scam
// score cutoff, minMessages the engagement floor before a report may fire.
func NewHoneypotService(store session.Store, dispatcher *callback.Dispatcher, threshold, minMessages int, log *logrus.Logger) *HoneypotService {
	if threshold <= 0 {
		threshold = detector.DefaultThreshold
	}
	if minMessages <= 0 {
		minMessages = 2
	}
	return &HoneypotService{
		store:       store,
		dispatcher:  dispatcher,
		log:         log,
		threshold:   threshold,
		minMessages: minMessages,
	}
}

// ProcessMessage ingests one inbound message for a session: first-contact
// history ingest, append, score, extract, merge, reply selection, and the
// finalize decision. Everything runs under the session's exclusive lock;
// only the callback delivery itself happens outside it, on a goroutine, so
// a slow evaluator never blocks the conversation.
func (h *HoneypotService) ProcessMessage(sessionID string, msg session.Message, history []session.Message) Result {
	var res Result
	var report *callback.Report

	h.store.Update(sessionID, func(s *session.Session) {
		// History is ingested once, oldest-first, the first time a
		// sessionId shows up with prior context attached.
		if len(s.Conversation) == 0 {
			for _, m := range history {
				s.Append(m)
			}
		}
		s.Append(msg)

		wasDetected := s.ScamDetected
		scamNow, score, signals := detector.Detect(msg.Text, h.threshold)
		s.RecordScore(score, signals, h.threshold)

		s.MergeIntelligence(extractor.Extract(msg.Text))

		metrics.MessagesProcessed.Inc()
		if !wasDetected && s.ScamDetected {
			metrics.ScamsDetected.Inc()
		}

		h.log.WithFields(logrus.Fields{
			"sessionId": sessionID,
			"sender":    msg.Sender,
			"score":     score,
			"scamNow":   scamNow,
			"messages":  s.TotalMessagesExchanged,
		}).Info("message scored")

		res.Reply = h.selectReply(s)

		if s.ShouldFinalize(h.minMessages) && s.BeginDispatch() {
			report = &callback.Report{
				SessionID:              s.ID,
				ScamDetected:           s.ScamDetected,
				TotalMessagesExchanged: s.TotalMessagesExchanged,
				ExtractedIntelligence:  s.Intelligence.Clone(),
				AgentNotes:             callback.BuildAgentNotes(s.MatchedSignals, s.Intelligence),
			}
		}

		res.Snapshot = s.Snapshot()
	})

	if report != nil {
		// The delivery deliberately outlives the inbound request, so its
		// context must not be derived from the request: fiber recycles the
		// request context as soon as the handler returns, and the transport
		// reads the context during the POST. The per-attempt timeout on the
		// dispatcher's client bounds it instead.
		go h.deliver(context.Background(), sessionID, *report)
	}
	return res
}

// deliver runs a callback attempt cycle and joins its outcome back into
// session state under the same per-session lock the pipeline uses. On
// failure the session stays ACTIVE with CallbackSent false, so the next
// qualifying message naturally retries.
func (h *HoneypotService) deliver(ctx context.Context, sessionID string, r callback.Report) {
	ok, attempts := h.dispatcher.Send(ctx, r)
	metrics.CallbackAttempts.Add(float64(attempts))

	h.store.Update(sessionID, func(s *session.Session) {
		s.EndDispatch()
		s.CallbackAttempts += attempts
		if ok {
			s.MarkCompleted()
		}
	})

	if ok {
		metrics.Callbacks.WithLabelValues("success").Inc()
		return
	}
	metrics.Callbacks.WithLabelValues("failure").Inc()
	h.log.WithField("sessionId", sessionID).Warn("callback exhausted retries, session left active")
}

// Snapshot exposes the read-only session view for the debug endpoint.
func (h *HoneypotService) Snapshot(sessionID string) (session.Snapshot, bool) {
	return h.store.Snapshot(sessionID)
}

func (h *HoneypotService) selectReply(s *session.Session) string {
	if s.ScamDetected {
		return replyProbing
	}
	return replyNeutral
}
