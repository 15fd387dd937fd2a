package lint

// Collector groups messages under caller-chosen keys, keeping keys in the
// order they were first added. A Collector is owned by whoever runs the
// rules; it is not safe for concurrent use.
//
// The zero value is ready to use.
type Collector struct {
	keys     []string
	messages map[string][]Message
}

// Add appends messages under key. Adding no messages still registers the key.
func (c *Collector) Add(key string, msgs ...Message) {
	if c.messages == nil {
		c.messages = make(map[string][]Message)
	}
	if _, ok := c.messages[key]; !ok {
		c.keys = append(c.keys, key)
		c.messages[key] = []Message{}
	}
	c.messages[key] = append(c.messages[key], msgs...)
}

// Keys returns the grouping keys in first-added order.
func (c *Collector) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Messages returns a copy of the messages recorded under key.
func (c *Collector) Messages(key string) []Message {
	msgs := make([]Message, len(c.messages[key]))
	copy(msgs, c.messages[key])
	return msgs
}

// All returns every message, grouped by key in key order.
func (c *Collector) All() []Message {
	var all []Message
	for _, key := range c.keys {
		all = append(all, c.messages[key]...)
	}
	return all
}

// Len returns the total number of messages.
func (c *Collector) Len() int {
	n := 0
	for _, msgs := range c.messages {
		n += len(msgs)
	}
	return n
}

// HasErrors reports whether any message has ERROR severity.
func (c *Collector) HasErrors() bool {
	for _, msgs := range c.messages {
		for _, m := range msgs {
			if m.Severity == ERROR {
				return true
			}
		}
	}
	return false
}
