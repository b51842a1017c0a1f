package analytics

import "github.com/methkalz/quizkit/internal/store"

// FactsFromSession distills a finished session into analytics input.
// A question answered incorrectly or left unanswered marks its topic as a
// mistake topic; a topic is clean only if every one of its questions was
// answered correctly.
func FactsFromSession(s *store.GameSession) SessionFacts {
	total := len(s.Questions)
	facts := SessionFacts{}
	if total == 0 {
		return facts
	}

	correct := 0
	topicMistakes := make(map[string]bool)
	topicSeen := make(map[string]bool)
	for i, q := range s.Questions {
		ok := s.Answers[i] != "" && s.Answers[i] == q.CorrectAnswerID
		if ok {
			correct++
		}
		if q.Topic == "" {
			continue
		}
		topicSeen[q.Topic] = true
		if !ok {
			topicMistakes[q.Topic] = true
		}
	}

	facts.Accuracy = float64(correct) / float64(total)
	if s.EndedAt != nil {
		facts.AvgTimeSeconds = s.EndedAt.Sub(s.StartedAt).Seconds() / float64(total)
	}
	for topic := range topicSeen {
		if topicMistakes[topic] {
			facts.MistakeTopics = append(facts.MistakeTopics, topic)
		} else {
			facts.CleanTopics = append(facts.CleanTopics, topic)
		}
	}
	return facts
}
