package core

import "errors"

// Pour errors. All of them leave both cups unchanged.
var (
	ErrSelfPour        = errors.New("cannot pour a cup into itself")
	ErrDestinationFull = errors.New("destination cup has no space")
	ErrSourceEmpty     = errors.New("source cup has no liquid to give")
	ErrColorMismatch   = errors.New("source and destination colors do not match")
)

// Feedback returns the player-facing text for a pour error.
func Feedback(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSelfPour):
		return "Cannot pour a cup into itself"
	case errors.Is(err, ErrDestinationFull):
		return "Destination cup has no space x_x"
	case errors.Is(err, ErrSourceEmpty):
		return "Source cup has no liquid to give"
	case errors.Is(err, ErrColorMismatch):
		return "Source and destination colors do not match"
	default:
		return err.Error()
	}
}

// Pour moves the top unit of src onto dst under the game rule: the
// destination must be empty or show the same liquid on top.
// src and dst are compared by identity, so passing the same pointer is a
// self pour even when two distinct cups hold equal contents.
// On success it returns the new source and destination; the arguments are
// never modified. On failure it returns copies of the inputs and the error.
func Pour(src, dst *Cup) (Cup, Cup, error) {
	return pour(src, dst, true)
}

// PourUnrestricted is Pour without the colour check. The scrambler uses it
// to mix sorted cups.
func PourUnrestricted(src, dst *Cup) (Cup, Cup, error) {
	return pour(src, dst, false)
}

func pour(src, dst *Cup, matchColor bool) (Cup, Cup, error) {
	if src == dst {
		return *src, *dst, ErrSelfPour
	}
	if dst.IsFull() {
		return *src, *dst, ErrDestinationFull
	}
	top, ok := src.Top()
	if !ok {
		return *src, *dst, ErrSourceEmpty
	}
	if matchColor {
		if dstTop, ok := dst.Top(); ok && dstTop != top {
			return *src, *dst, ErrColorMismatch
		}
	}
	return src.withoutTop(), dst.withTop(top), nil
}
