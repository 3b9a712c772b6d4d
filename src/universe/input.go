package universe

//ScriptedInput replays a fixed list of events.
//Once the script is exhausted non-blocking polls return nil and blocking polls return ErrInputClosed.
type ScriptedInput struct {
	events []Event
}

func NewScriptedInput(events ...Event) *ScriptedInput {
	return &ScriptedInput{events: events}
}

//Keys builds a script of key events
func Keys(keys string) []Event {
	res := make([]Event, 0, len(keys))
	for _, k := range keys {
		res = append(res, KeyEvent{Key: k})
	}
	return res
}

func (in *ScriptedInput) PollEvent(block bool) (Event, error) {
	if len(in.events) == 0 {
		if block {
			return nil, ErrInputClosed
		}
		return nil, nil
	}
	ev := in.events[0]
	in.events = in.events[1:]
	return ev, nil
}

//Pending returns the count of not yet delivered events
func (in *ScriptedInput) Pending() int {
	return len(in.events)
}
