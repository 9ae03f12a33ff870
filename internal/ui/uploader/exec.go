package uploader

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"essaydesk/internal/attachments"
)

// terminalGateway is a chooser that needs the terminal while it runs
type terminalGateway interface {
	attachments.Gateway
	SetStdin(io.Reader)
	SetStdout(io.Writer)
}

// pickCommand runs a terminal chooser under tea.Exec
type pickCommand struct {
	ctx     context.Context
	gateway terminalGateway
	req     attachments.PickRequest
	result  attachments.PickResult
}

func (c *pickCommand) Run() error {
	res, err := c.gateway.Pick(c.ctx, c.req)
	c.result = res
	return err
}

func (c *pickCommand) SetStdin(r io.Reader)  { c.gateway.SetStdin(r) }
func (c *pickCommand) SetStdout(w io.Writer) { c.gateway.SetStdout(w) }
func (c *pickCommand) SetStderr(io.Writer)   {}

// pickCmd invokes the gateway once. Terminal choosers take over the screen
// through tea.Exec; others run as a plain command.
func pickCmd(ctx context.Context, id int, gw attachments.Gateway, req attachments.PickRequest) tea.Cmd {
	if tg, ok := gw.(terminalGateway); ok {
		c := &pickCommand{ctx: ctx, gateway: tg, req: req}
		return tea.Exec(c, func(err error) tea.Msg {
			return PickFinishedMsg{id: id, Result: c.result, Err: err}
		})
	}
	return func() tea.Msg {
		res, err := gw.Pick(ctx, req)
		return PickFinishedMsg{id: id, Result: res, Err: err}
	}
}
