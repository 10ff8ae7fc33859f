package journal

import (
	"bufio"
	"context"
	"io"

	"github.com/kiryu-dev/sea-battle/internal/domain"
	"github.com/kiryu-dev/sea-battle/pkg/utils"
	"github.com/pkg/errors"
)

type repository struct {
	w io.Writer
}

// New writes one json object per line into w.
func New(w io.Writer) repository {
	return repository{w: w}
}

func (r repository) Record(ctx context.Context, event domain.ShotEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line, err := utils.MarshalJsonLine(event)
	if err != nil {
		return errors.WithMessage(err, "encode shot event")
	}
	if _, err := r.w.Write(line); err != nil {
		return errors.WithMessage(err, "write shot event")
	}
	return nil
}

type nop struct{}

func Nop() nop {
	return nop{}
}

func (nop) Record(context.Context, domain.ShotEvent) error {
	return nil
}

func ReadAll(r io.Reader) ([]domain.ShotEvent, error) {
	var events []domain.ShotEvent
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		event, err := utils.UnmarshalJson[domain.ShotEvent](scanner.Bytes())
		if err != nil {
			return nil, errors.WithMessagef(err, "decode event #%d", len(events)+1)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithMessage(err, "scan journal")
	}
	return events, nil
}
