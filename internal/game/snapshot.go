package game

// State returns a copy; the secret is included only once the game is over.
func (e *Engine) State() GameState {
	st := GameState{
		GameID:       e.id,
		Status:       e.status,
		AttemptsUsed: e.attemptsUsed,
		MaxAttempts:  MaxAttempts,
		History:      e.History(),
		Finished:     e.Finished(),
		Outcome:      e.outcome(),
		Message:      e.message,
	}
	if st.Finished {
		st.Secret = e.secret
	}
	return st
}
