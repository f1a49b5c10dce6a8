package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-light-wallet/internal/app"
	"github.com/MKhiriev/go-light-wallet/internal/service"
	"github.com/MKhiriev/go-light-wallet/models"
)

const (
	maxOutputLines = 200
	noticeTimeout  = 3 * time.Second
	statusCommand  = "syncstatus"
)

type walletModel struct {
	ctx       context.Context
	commands  service.CommandService
	lifecycle service.LifecycleService
	build     models.AppBuildInfo
	interval  time.Duration
	copy      func(string) error

	seed     string
	showSeed bool

	status  string
	syncing bool
	spinner spinner.Model

	input  textinput.Model
	output []string
	notice string

	width int
}

func newWalletModel(ctx context.Context, services *service.ClientServices, build models.AppBuildInfo, interval time.Duration, initResult string) walletModel {
	in := textinput.New()
	in.Placeholder = "command [args], e.g. balance or import <key>"
	in.Prompt = "> "
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	if interval <= 0 {
		interval = time.Second
	}

	m := walletModel{
		ctx:       ctx,
		commands:  services.CommandService,
		lifecycle: services.LifecycleService,
		build:     build,
		interval:  interval,
		copy:      clipboard.WriteAll,
		spinner:   sp,
		input:     in,
		status:    "waiting for first status...",
	}

	if seed, ok := parseSeed(initResult); ok {
		m.seed = seed
		m.showSeed = true
		m.output = append(m.output, "new wallet created, write the seed phrase down")
	} else if initResult != "" {
		m.output = append(m.output, initResult)
	}

	return m
}

func (m walletModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.pollStatus())
}

func (m walletModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.copySeed):
			if m.seed == "" {
				return m, nil
			}
			return m, copySeed(m.copy, m.seed)
		case key.Matches(msg, keys.hideSeed):
			m.showSeed = false
			return m, nil
		case key.Matches(msg, keys.enter):
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			return m, m.runCommand(line)
		}

	case pollTickMsg:
		return m, m.pollStatus()

	case statusPolledMsg:
		m.status, m.syncing = summarizeStatus(msg.raw)
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg { return pollTickMsg{} })

	case commandDoneMsg:
		m.appendOutput("> " + msg.line)
		m.appendOutput(msg.outcome)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.notice = "copy failed: " + msg.err.Error()
		} else {
			m.notice = "seed phrase copied to clipboard"
		}
		return m, tea.Tick(noticeTimeout, func(time.Time) tea.Msg { return clearNoticeMsg{} })

	case clearNoticeMsg:
		m.notice = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *walletModel) appendOutput(lines ...string) {
	for _, l := range lines {
		m.output = append(m.output, strings.Split(l, "\n")...)
	}
	if over := len(m.output) - maxOutputLines; over > 0 {
		m.output = m.output[over:]
	}
}

func (m walletModel) pollStatus() tea.Cmd {
	ctx, commands := m.ctx, m.commands
	return func() tea.Msg {
		return statusPolledMsg{raw: commands.Exec(ctx, statusCommand, "")}
	}
}

func (m walletModel) runCommand(line string) tea.Cmd {
	ctx, commands := m.ctx, m.commands
	return func() tea.Msg {
		command, args := parseCommandLine(line)
		return commandDoneMsg{line: line, outcome: commands.Exec(ctx, command, args)}
	}
}

func copySeed(copyFn func(string) error, seed string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyFn(seed)}
	}
}

func (m walletModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("go-light-wallet %s", m.build.BuildVersion())))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	fmt.Fprintf(&b, "session: %s\n", m.lifecycle.State())

	if m.showSeed && m.seed != "" {
		b.WriteString(seedBoxStyle.Render("seed: " + m.seed))
		b.WriteString("\n")
	}

	status := m.status
	if strings.HasPrefix(status, app.MsgErrorPrefix) {
		status = errorStyle.Render(status)
	}
	if m.syncing {
		status = m.spinner.View() + " " + status
	}
	b.WriteString("status: ")
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	for _, line := range m.visibleOutput() {
		b.WriteString(fitText(line, m.lineWidth()))
		b.WriteString("\n")
	}

	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n")
	}

	help := "enter: run  ctrl+c/esc: quit"
	if m.seed != "" {
		help += "  ctrl+y: copy seed  ctrl+x: hide seed"
	}
	b.WriteString(helpStyle.Render(help))

	return appStyle.Render(b.String())
}

func (m walletModel) visibleOutput() []string {
	const visible = 15
	if len(m.output) <= visible {
		return m.output
	}
	return m.output[len(m.output)-visible:]
}

func (m walletModel) lineWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-4, 10)
}
