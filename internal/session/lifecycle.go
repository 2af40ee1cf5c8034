package session

import "github.com/trivium-games/trivium/internal/models"

// startGame moves the active room into play: question index 0, timer set to
// the configured per-question seconds, first question installed (or absent
// when nothing matches the filter), answer log cleared.
func (s *State) startGame(sel *Selector) Outcome {
	room := s.ActiveRoom()
	if room == nil {
		return noop(NoopNoRoom)
	}
	if room.State == models.StateFinished {
		return noop(NoopFinished)
	}
	shuffled := sel.eligible(s.Settings)
	room.State = models.StatePlaying
	room.QuestionIndex = 0
	room.TimeRemaining = s.Settings.TimePerQuestion
	s.Question = nil
	if len(shuffled) > 0 {
		q := shuffled[0]
		s.Question = &q
	}
	s.Answers = nil
	s.ShowResults = false
	return applied()
}

// nextQuestion advances the question index, finishing the game once the
// configured number of questions has been played. The eligible set is
// re-derived and re-shuffled on every advance.
func (s *State) nextQuestion(sel *Selector) Outcome {
	room := s.ActiveRoom()
	if room == nil {
		return noop(NoopNoRoom)
	}
	if room.State == models.StateFinished {
		return noop(NoopFinished)
	}
	next := room.QuestionIndex + 1
	if next >= s.Settings.QuestionsPerGame {
		return s.endGame()
	}
	s.Question = sel.questionAt(s.Settings, next)
	room.QuestionIndex = next
	room.TimeRemaining = s.Settings.TimePerQuestion
	s.ShowResults = false
	return applied()
}

// endGame is terminal: the room is marked finished, the active question
// cleared, and results shown. No further start or advance applies.
func (s *State) endGame() Outcome {
	room := s.ActiveRoom()
	if room == nil {
		return noop(NoopNoRoom)
	}
	if room.State == models.StateFinished {
		return noop(NoopFinished)
	}
	room.State = models.StateFinished
	s.Question = nil
	s.ShowResults = true
	return applied()
}
