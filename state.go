package pong

// State is the phase of a match.
type State uint8

const (
	MatchBegin   State = iota // Showing the match intro
	RoundBegin                // Ball centred, short pause before serving
	RoundPlaying              // Ball in play
	MatchEnd                  // Showing the winner
)

func (s State) String() string {
	switch s {
	case MatchBegin:
		return "match_begin"
	case RoundBegin:
		return "round_begin"
	case RoundPlaying:
		return "round_playing"
	case MatchEnd:
		return "match_end"
	}
	return "unknown"
}

// Player identifies a side of the court.
type Player uint8

const (
	NoPlayer Player = iota
	Player1         // Left paddle
	Player2         // Right paddle
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	}
	return "none"
}

// event is what happened during the update step of a tick.
type event uint8

const (
	evNone       event = iota
	evDwellDone        // The state's dwell counter reached its threshold
	evScored           // A point was scored, match continues
	evMatchPoint       // A point was scored and it won the match
)

// transition is total over (State, event): any pair without a rule keeps the
// current state.
func transition(s State, ev event) State {
	switch s {
	case MatchBegin:
		if ev == evDwellDone {
			return RoundBegin
		}
	case RoundBegin:
		if ev == evDwellDone {
			return RoundPlaying
		}
	case RoundPlaying:
		switch ev {
		case evScored:
			return RoundBegin
		case evMatchPoint:
			return MatchEnd
		}
	case MatchEnd:
		if ev == evDwellDone {
			return MatchBegin
		}
	}
	return s
}
