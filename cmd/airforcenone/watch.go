package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/unklstewy/airforcenone/pkg/adsb"
	"github.com/unklstewy/airforcenone/pkg/classify"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live terminal view of VIP aircraft",
	Long: `Polls the military feed every watch.interval and redraws the report.

Controls:
  r       Refresh now
  q       Quit`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

type watchModel struct {
	ctx      context.Context
	poll     func(context.Context) classify.Report
	policy   classify.Policy
	interval time.Duration

	report   *classify.Report
	polling  bool
	quitting bool

	// seq identifies the current tick chain; older ticks are dropped
	seq int
}

type tickMsg struct {
	seq int
}

type reportMsg classify.Report

func newWatchModel(ctx context.Context, poll func(context.Context) classify.Report, p classify.Policy, interval time.Duration) watchModel {
	return watchModel{
		ctx:      ctx,
		poll:     poll,
		policy:   p,
		interval: interval,
		polling:  true,
	}
}

func (m watchModel) tick() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

func (m watchModel) fetch() tea.Cmd {
	ctx, poll := m.ctx, m.poll
	return func() tea.Msg {
		return reportMsg(poll(ctx))
	}
}

func (m watchModel) Init() tea.Cmd {
	return m.fetch()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if m.polling {
				return m, nil
			}
			m.polling = true
			return m, m.fetch()
		}

	case reportMsg:
		r := classify.Report(msg)
		m.report = &r
		m.polling = false
		m.seq++
		return m, m.tick()

	case tickMsg:
		if msg.seq != m.seq || m.polling {
			return m, nil
		}
		m.polling = true
		return m, m.fetch()
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	if m.report == nil {
		s.WriteString(dimStyle.Render("Polling ADSB.One military feed..."))
		s.WriteString("\n")
	} else {
		s.WriteString(renderReport(*m.report, m.policy))
	}

	s.WriteString("\n")
	status := fmt.Sprintf("every %s", m.interval)
	if m.polling {
		status = "polling..."
	}
	s.WriteString(dimStyle.Render(fmt.Sprintf("[%s]  r: refresh  q: quit", status)))
	return s.String()
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}

	poll := func(ctx context.Context) classify.Report {
		return a.run(ctx, adsb.Military())
	}
	m := newWatchModel(ctx, poll, a.engine.Policy(), cfg.Watch.Interval)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
