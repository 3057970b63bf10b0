// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eduree/metaon/internal/model"
	"github.com/eduree/metaon/internal/relay"
	"github.com/eduree/metaon/internal/store"
)

// DefaultRole is substituted for an empty role before submission. The
// store itself never rewrites fields; the default is a submission-path
// concern.
const DefaultRole = "N/A"

// ErrRelayFailed indicates the external form relay rejected the inquiry
// or was unreachable. Nothing was recorded locally in that case.
var ErrRelayFailed = errors.New("inquiry relay failed")

// Inquiries coordinates the two submission paths: the home page forwards
// to the external relay and records locally only on relay success; the
// contact page records locally without touching the relay.
type Inquiries struct {
	store  *store.Store
	relay  *relay.Client
	logger *slog.Logger
}

// NewInquiries creates the inquiry service. relayClient may be nil when
// no relay endpoint is configured; SubmitViaRelay then degrades to a
// local-only submission.
func NewInquiries(st *store.Store, relayClient *relay.Client, logger *slog.Logger) *Inquiries {
	return &Inquiries{store: st, relay: relayClient, logger: logger}
}

// SubmitViaRelay forwards the inquiry to the external relay and, only on
// success, records it in the content store. No retry on failure; the
// visitor resubmits the form.
func (s *Inquiries) SubmitViaRelay(ctx context.Context, inq model.Inquiry) (model.Inquiry, error) {
	inq = withDefaults(inq)

	if s.relay == nil {
		return s.SubmitLocal(ctx, inq)
	}

	res := s.relay.Submit(ctx, inq)
	if !res.Success {
		s.logger.Warn("inquiry relay failed",
			"status", res.StatusCode, "error", res.Err)
		return model.Inquiry{}, fmt.Errorf("%w: %v", ErrRelayFailed, res.Err)
	}

	saved, err := s.store.AddInquiry(ctx, inq)
	if err != nil {
		// The relay accepted the inquiry but local recording failed;
		// the submission still counts as delivered.
		s.logger.Error("inquiry accepted by relay but not recorded locally", "error", err)
		return saved, nil
	}
	return saved, nil
}

// SubmitLocal records the inquiry in the content store without calling
// the relay.
func (s *Inquiries) SubmitLocal(ctx context.Context, inq model.Inquiry) (model.Inquiry, error) {
	return s.store.AddInquiry(ctx, withDefaults(inq))
}

func withDefaults(inq model.Inquiry) model.Inquiry {
	if inq.Role == "" {
		inq.Role = DefaultRole
	}
	return inq
}
