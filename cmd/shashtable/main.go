package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/shashtable/ds/sortedhashtable"
	"github.com/iotaledger/shashtable/logger"
	"github.com/iotaledger/shashtable/shell"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "shashtable: %s\n", err)
		cancel()
		os.Exit(1)
	}
}

// run loads the parameters, creates the table and executes the commands read from input until it is exhausted.
func run(ctx context.Context, args []string, input io.Reader, output io.Writer) error {
	params, err := loadParameters(args)
	if err != nil {
		return ierrors.Errorf("failed to load parameters: %w", err)
	}

	rootLogger, err := logger.NewRootLogger(params.Logger)
	if err != nil {
		return err
	}
	//nolint:errcheck // syncing stderr fails on some platforms
	defer rootLogger.Sync()

	log := rootLogger.Named("shashtable").With(zap.String("session", uuid.NewString()))

	table, err := newTable(params.Table)
	if err != nil {
		return err
	}
	defer table.Destroy()

	log.Info("table created",
		zap.Int("buckets", table.Buckets()),
		zap.String("hashFunc", params.Table.HashFunc),
	)

	if err := shell.New(table, output, log.Named("shell")).Run(ctx, input); err != nil {
		return ierrors.Errorf("shell stopped: %w", err)
	}

	log.Info("session finished", zap.Int("entries", table.Size()))

	return nil
}

func newTable(params ParametersTable) (*sortedhashtable.SortedHashTable, error) {
	hashFunc, err := sortedhashtable.HashFuncByName(params.HashFunc)
	if err != nil {
		return nil, err
	}

	table, err := sortedhashtable.New(params.Buckets, sortedhashtable.WithHashFunc(hashFunc))
	if err != nil {
		return nil, ierrors.Errorf("failed to create table with %d buckets: %w", params.Buckets, err)
	}

	return table, nil
}
