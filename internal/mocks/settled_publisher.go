package mocks

import (
	"context"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/publishers"
	"github.com/stretchr/testify/mock"
)

type SettledPublisher struct {
	mock.Mock
}

func (m *SettledPublisher) Publish(ctx context.Context, event publishers.SettledEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
