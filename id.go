package gui

import (
	"encoding/binary"
	"hash/fnv"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames for the same widget.
type ID uint64

// GetID generates a stable ID from a string label.
// The ID is unique within the current ID stack context.
// Uses an auto-incrementing counter to differentiate same labels in loops,
// so it is only stable while the widgets before it keep their order.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++

	h := fnv.New64a()
	h.Write([]byte(label))
	labelHash := h.Sum64()

	// parent (32 bits) + counter (16 bits) + label (16 bits)
	return ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter)<<16 | labelHash&0xFFFF)
}

// IDFrom derives a child ID from parent, label and n without touching the
// call counter. The result depends only on its arguments, which makes it
// the right key for state that must survive changes elsewhere in the frame
// (rows added or removed above a footer, for example).
func IDFrom(parent ID, label string, n int) ID {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(parent))
	binary.LittleEndian.PutUint64(buf[8:], uint64(n))

	h := fnv.New64a()
	h.Write(buf[:])
	h.Write([]byte(label))
	id := ID(h.Sum64())
	if id == 0 {
		// 0 means "nobody" for mouse capture.
		id = 1
	}
	return id
}

// widgetID resolves the ID of a labelled widget. WithID keys it by the
// enclosing ID scope alone, so its state survives widgets being added or
// removed before it; without it the label and call order decide.
func (ctx *Context) widgetID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return IDFrom(ctx.CurrentID(), optID, 0)
	}
	return ctx.GetID(label)
}

// PushID pushes an ID onto the stack for nested widgets.
// All GetID calls will be relative to this parent ID.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushRawID pushes an already computed ID, usually one from IDFrom.
func (ctx *Context) PushRawID(id ID) {
	ctx.idStack = append(ctx.idStack, id)
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
