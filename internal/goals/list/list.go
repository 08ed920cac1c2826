package list

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sgl-project/abs-wagon/internal/goals"
	"github.com/sgl-project/abs-wagon/pkg/storage"
)

// Lister prints the keys stored under a prefix.
type Lister struct {
	config  *Config
	session goals.Session
	out     io.Writer
}

var _ goals.Goal = (*Lister)(nil)

// NewLister creates a lister writing one line per object to out
func NewLister(config *Config, session goals.Session, out io.Writer) *Lister {
	return &Lister{
		config:  config,
		session: session,
		out:     out,
	}
}

// Run implements goals.Goal
func (l *Lister) Run(ctx context.Context) error {
	log := l.session.RunLogger("list").
		WithField("container", l.config.Container).
		WithField("prefix", l.config.Prefix)

	return l.session.WithConnection(ctx, l.config.Container, func(conn storage.Connection) error {
		it, err := conn.List(ctx, l.config.Prefix)
		if err != nil {
			return err
		}

		count := 0
		for item, err := range storage.All(ctx, it) {
			if err != nil {
				return err
			}
			if err := l.print(item); err != nil {
				return fmt.Errorf("writing listing: %w", err)
			}
			count++
		}

		log.WithField("objects", count).Debug("Listing completed")
		return nil
	})
}

func (l *Lister) print(item storage.ObjectInfo) error {
	if !l.config.Long {
		_, err := fmt.Fprintln(l.out, item.Name)
		return err
	}
	_, err := fmt.Fprintf(l.out, "%12d  %s  %s\n", item.Size, item.LastModified.UTC().Format(time.RFC3339), item.Name)
	return err
}
