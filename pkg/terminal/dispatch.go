package terminal

import "fmt"

// Redirect appends stdout and stderr of cmd to the sentinel file.
func Redirect(cmd, sentinel string) string {
	return cmd + " >> " + sentinel + " 2>&1"
}

// TypeAndEnter types cmd with its output redirected to the sentinel file and submits it.
func (s *Session) TypeAndEnter(cmd string) error {
	if err := s.send(Redirect(cmd, s.opts.SentinelFile)); err != nil {
		return fmt.Errorf("run %q: %w", cmd, err)
	}
	return nil
}

// ProvideInput types text as is and submits it. Used to answer prompts of a command
// that already redirects its output.
func (s *Session) ProvideInput(text string) error {
	if err := s.send(text); err != nil {
		return fmt.Errorf("provide input: %w", err)
	}
	return nil
}

func (s *Session) send(text string) error {
	in := s.input()
	if err := in.Type(text); err != nil {
		return err
	}
	return in.Press("Enter")
}
