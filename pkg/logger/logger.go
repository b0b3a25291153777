package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a zap logger appropriate for the environment: JSON output in
// production, console output otherwise.
func New(production bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if production {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}
	return l, nil
}
