package perfdar

import "sort"

// Channel is a named synchronization action. Identity is the name alone;
// direction is a per-use annotation on the edge carrying the channel, so an
// input and an output with the same name are the same channel.
type Channel struct {
	name  string
	input bool
}

// NewChannel builds a channel with an explicit direction annotation.
func NewChannel(name string, input bool) Channel {
	return Channel{name: name, input: input}
}

// NewInput is a channel annotated as an input.
func NewInput(name string) Channel { return Channel{name: name, input: true} }

// NewOutput is a channel annotated as an output.
func NewOutput(name string) Channel { return Channel{name: name, input: false} }

func (c Channel) Name() string { return c.name }

func (c Channel) IsInput() bool { return c.input }

func (c Channel) IsOutput() bool { return !c.input }

// Equal compares channels by name only.
func (c Channel) Equal(other Channel) bool { return c.name == other.name }

func (c Channel) String() string {
	if c.input {
		return c.name + "?"
	}
	return c.name + "!"
}

// ChannelSet is a set of channels keyed by name.
type ChannelSet struct {
	channels map[string]Channel
}

// NewChannelSet builds a set from the given channels.
func NewChannelSet(channels ...Channel) ChannelSet {
	set := ChannelSet{channels: make(map[string]Channel)}
	for _, channel := range channels {
		set.Add(channel)
	}
	return set
}

// Add inserts the channel. The first direction annotation seen for a name is
// kept; membership is by name regardless.
func (s ChannelSet) Add(channel Channel) {
	if _, ok := s.channels[channel.name]; !ok {
		s.channels[channel.name] = channel
	}
}

// Contains reports membership by name.
func (s ChannelSet) Contains(channel Channel) bool {
	_, ok := s.channels[channel.name]
	return ok
}

func (s ChannelSet) Len() int { return len(s.channels) }

// Union returns a new set with the channels of both sets.
func (s ChannelSet) Union(other ChannelSet) ChannelSet {
	union := NewChannelSet()
	for _, channel := range s.channels {
		union.Add(channel)
	}
	for _, channel := range other.channels {
		union.Add(channel)
	}
	return union
}

// Intersection returns a new set with the channels present in both sets.
func (s ChannelSet) Intersection(other ChannelSet) ChannelSet {
	intersection := NewChannelSet()
	for name, channel := range s.channels {
		if _, ok := other.channels[name]; ok {
			intersection.Add(channel)
		}
	}
	return intersection
}

// Disjoint reports whether no channel name is shared between the sets.
func (s ChannelSet) Disjoint(other ChannelSet) bool {
	for name := range s.channels {
		if _, ok := other.channels[name]; ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s ChannelSet) Clone() ChannelSet {
	clone := NewChannelSet()
	for _, channel := range s.channels {
		clone.Add(channel)
	}
	return clone
}

// Slice returns the channels sorted by name.
func (s ChannelSet) Slice() []Channel {
	channels := make([]Channel, 0, len(s.channels))
	for _, channel := range s.channels {
		channels = append(channels, channel)
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i].name < channels[j].name })
	return channels
}

// Names returns the channel names, sorted.
func (s ChannelSet) Names() []string {
	names := make([]string, 0, len(s.channels))
	for name := range s.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
