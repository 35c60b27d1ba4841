package marquee

// Thread links a root message to its replies. Replies hold a reference
// to the thread; the root does not, so no reference cycle through the
// root can form. The thread stays alive while any reply or the root
// retains it.
type Thread struct {
	root    *Message
	replies []*Message
}

// NewThread returns a thread rooted at root. The root's ReplyThread
// stays unset.
func NewThread(root *Message) *Thread {
	return &Thread{root: root}
}

// Root returns the thread's root message.
func (t *Thread) Root() *Message { return t.root }

// Replies returns the thread's replies in arrival order.
func (t *Thread) Replies() []*Message { return t.replies }

// AddReply records a reply and points it back at the thread. Adding the
// root itself is a no-op: only non-root replies carry the thread
// back-reference.
func (t *Thread) AddReply(m *Message) {
	if m == nil || m == t.root {
		return
	}
	m.ReplyThread = t
	if m.ReplyParent == nil {
		m.ReplyParent = t.root
	}
	t.replies = append(t.replies, m)
}
