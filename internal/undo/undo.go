// Package undo implements the labelled-transaction history the palette
// editor records into: commands grouped into labelled sequences, a
// transaction wrapper that executes commands before committing the
// sequence, and implanting (appending a command to the most recently
// executed sequence instead of opening a new one).
package undo

import (
	"errors"
	"fmt"
)

// Command is a reversible operation recorded in the history.
type Command interface {
	Execute() error
	Revert() error
}

// ErrNoOpenCommand is returned by Implant when the history is empty or
// everything has been undone.
var ErrNoOpenCommand = errors.New("undo: no executed command to implant into")

// Sequence is a labelled group of commands that undoes and redoes as one
// unit.
type Sequence struct {
	label string
	cmds  []Command
}

// Label returns the operation label the sequence was recorded under.
func (s *Sequence) Label() string { return s.label }

// Len returns the number of commands in the sequence.
func (s *Sequence) Len() int { return len(s.cmds) }

// History is the undo stack. cursor counts the executed sequences; entries
// past it are redoable.
type History struct {
	seqs   []*Sequence
	cursor int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Len returns the number of recorded sequences (including redoable ones).
func (h *History) Len() int { return len(h.seqs) }

// ExecutedLen returns the number of currently executed sequences.
func (h *History) ExecutedLen() int { return h.cursor }

// LastLabel returns the label of the most recently executed sequence.
func (h *History) LastLabel() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	return h.seqs[h.cursor-1].label, true
}

// Begin opens a transaction. Commands executed through it become one
// sequence once Commit is called; an uncommitted transaction reverts its
// executed commands when Rollback is called.
func (h *History) Begin(label string) *Txn {
	return &Txn{h: h, seq: &Sequence{label: label}}
}

// Record is the common single-command path: begin, execute, commit.
func (h *History) Record(label string, cmd Command) error {
	txn := h.Begin(label)
	if err := txn.Execute(cmd); err != nil {
		return err
	}
	return txn.Commit()
}

// Implant appends cmd to the most recently executed sequence and executes
// it immediately, without opening a new transaction.
func (h *History) Implant(cmd Command) error {
	if h.cursor == 0 {
		return ErrNoOpenCommand
	}
	if err := cmd.Execute(); err != nil {
		return fmt.Errorf("failed to execute implanted command: %w", err)
	}
	seq := h.seqs[h.cursor-1]
	seq.cmds = append(seq.cmds, cmd)
	return nil
}

// Undo reverts the most recently executed sequence, last command first.
func (h *History) Undo() error {
	if h.cursor == 0 {
		return errors.New("undo: nothing to undo")
	}
	seq := h.seqs[h.cursor-1]
	for i := len(seq.cmds) - 1; i >= 0; i-- {
		if err := seq.cmds[i].Revert(); err != nil {
			return fmt.Errorf("failed to revert %q: %w", seq.label, err)
		}
	}
	h.cursor--
	return nil
}

// Redo re-executes the most recently undone sequence.
func (h *History) Redo() error {
	if h.cursor >= len(h.seqs) {
		return errors.New("undo: nothing to redo")
	}
	seq := h.seqs[h.cursor]
	for _, cmd := range seq.cmds {
		if err := cmd.Execute(); err != nil {
			return fmt.Errorf("failed to re-execute %q: %w", seq.label, err)
		}
	}
	h.cursor++
	return nil
}

// Txn is an open transaction on a History.
type Txn struct {
	h         *History
	seq       *Sequence
	committed bool
}

// Execute runs cmd and stages it into the transaction's sequence.
func (t *Txn) Execute(cmd Command) error {
	if t.committed {
		return errors.New("undo: execute on committed transaction")
	}
	if err := cmd.Execute(); err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}
	t.seq.cmds = append(t.seq.cmds, cmd)
	return nil
}

// Commit records the sequence as the newest executed operation, dropping
// any redoable tail.
func (t *Txn) Commit() error {
	if t.committed {
		return errors.New("undo: double commit")
	}
	t.committed = true
	t.h.seqs = append(t.h.seqs[:t.h.cursor], t.seq)
	t.h.cursor = len(t.h.seqs)
	return nil
}

// Rollback reverts all staged commands of an uncommitted transaction.
func (t *Txn) Rollback() error {
	if t.committed {
		return nil
	}
	t.committed = true
	for i := len(t.seq.cmds) - 1; i >= 0; i-- {
		if err := t.seq.cmds[i].Revert(); err != nil {
			return fmt.Errorf("failed to roll back command: %w", err)
		}
	}
	return nil
}
