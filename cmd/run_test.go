package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func waitResult(t *testing.T, errC <-chan error) error {
	t.Helper()
	select {
	case err := <-errC:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("waitComponents did not return")
		return nil
	}
}

func TestWaitComponentsReturnsWhenComponentsStop(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	errC := make(chan error, 1)
	go func() { errC <- waitComponents(gctx, g, time.Hour) }()
	cancel(errTerminated)

	err := waitResult(t, errC)
	require.ErrorIs(t, err, errTerminated)
	require.NoError(t, componentsError(ctx, err))
}

func TestWaitComponentsComponentFails(t *testing.T) {
	errBoom := errors.New("boom")
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return errBoom
	})
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	errC := make(chan error, 1)
	go func() { errC <- waitComponents(gctx, g, time.Hour) }()

	err := waitResult(t, errC)
	require.ErrorIs(t, err, errBoom)
	require.ErrorIs(t, componentsError(ctx, err), errBoom)
}

func TestWaitComponentsEmptyGroupWaitsForCancel(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	g, gctx := errgroup.WithContext(ctx)

	errC := make(chan error, 1)
	go func() { errC <- waitComponents(gctx, g, time.Hour) }()

	select {
	case err := <-errC:
		t.Fatalf("returned before cancel: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	errRPC := errors.New("rpc server: listen failed")
	cancel(errRPC)
	require.ErrorIs(t, waitResult(t, errC), errRPC)
}

func TestWaitComponentsTimeout(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	stuck := make(chan struct{})
	defer close(stuck)
	g.Go(func() error {
		<-stuck
		return nil
	})

	errC := make(chan error, 1)
	go func() { errC <- waitComponents(gctx, g, 20*time.Millisecond) }()
	cancel(errTerminated)

	require.ErrorIs(t, waitResult(t, errC), errTerminated)
}
