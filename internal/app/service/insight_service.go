package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"learning_iq/internal/common"
	"learning_iq/internal/domain/repository"
	"learning_iq/internal/platform/logger"
)

// weakThreshold: stored mastery below this marks a topic as weak.
const weakThreshold = 60.0

const fallbackTopicName = "Arrays"

type InsightService struct {
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
}

func NewInsightService(userRepo repository.UserRepository, catalogRepo repository.CatalogRepository) *InsightService {
	return &InsightService{userRepo: userRepo, catalogRepo: catalogRepo}
}

type Recommendation struct {
	NextTopic           string   `json:"next_topic"`
	DailyPlan           []string `json:"daily_plan"`
	EstimatedCompletion string   `json:"estimated_completion"`
	Priority            string   `json:"priority"`
}

type GapEntry struct {
	TopicID       int64   `json:"topic_id"`
	TopicName     string  `json:"topic_name"`
	Mastery       float64 `json:"mastery"`
	Prerequisites []int64 `json:"prerequisites"`
}

type GapReport struct {
	Weak            []GapEntry `json:"weak"`
	Recommendations []string   `json:"recommendations"`
}

func fallbackRecommendation() Recommendation {
	return Recommendation{
		NextTopic: fallbackTopicName,
		DailyPlan: []string{
			"Day 1: Arrays basics (45min)",
			"Day 2: Practice (60min)",
			"Day 3: Quiz (30min)",
		},
		EstimatedCompletion: "2.5 hours",
		Priority:            "foundational concepts",
	}
}

// Recommendations builds the 7-day study plan around the weakest topic. It
// never fails toward the caller: a missing user or a storage error degrades
// to the fixed fallback plan.
func (s *InsightService) Recommendations(ctx context.Context, userID int64) Recommendation {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			logger.Error("recommendations: loading user failed", "user_id", userID, "err", err)
		}
		return fallbackRecommendation()
	}

	type weakTopic struct {
		id    string
		score float64
	}
	weak := []weakTopic{}
	for id, score := range user.MasteryMap {
		if score < weakThreshold {
			weak = append(weak, weakTopic{id: id, score: score})
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].score != weak[j].score {
			return weak[i].score < weak[j].score
		}
		return weak[i].id < weak[j].id
	})

	nextName := fallbackTopicName
	nextID := int64(1)
	if len(weak) > 0 {
		if id, err := strconv.ParseInt(weak[0].id, 10, 64); err == nil {
			nextID = id
		}
	}
	if topic, err := s.catalogRepo.FindTopicByID(ctx, nextID); err == nil {
		nextName = topic.Name
	}

	priority := "next in roadmap"
	if len(weak) > 0 {
		priority = "weak foundational concepts"
	}

	return Recommendation{
		NextTopic: nextName,
		DailyPlan: []string{
			fmt.Sprintf("Day 1: %s basics (45 min)", nextName),
			"Day 2: Practice problems (60 min)",
			"Day 3: Quiz + Review (30 min)",
			"Day 4: Prerequisite recap if needed",
			"Day 5: Timed practice set",
			"Day 6: Weak topic reinforcement",
			"Day 7: Weekly review & next topic",
		},
		EstimatedCompletion: "2.5 hours",
		Priority:            priority,
	}
}

// Gaps reports every weak topic, counting never-attempted topics as mastery 0,
// sorted weakest first. A missing user yields empty slices, not an error.
func (s *InsightService) Gaps(ctx context.Context, userID int64) (GapReport, error) {
	report := GapReport{Weak: []GapEntry{}, Recommendations: []string{}}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return report, nil
		}
		return report, err
	}

	topics, err := s.catalogRepo.ListTopics(ctx)
	if err != nil {
		return report, err
	}

	for _, topic := range topics {
		score := user.MasteryMap[strconv.FormatInt(topic.ID, 10)]
		if score < weakThreshold {
			report.Weak = append(report.Weak, GapEntry{
				TopicID:       topic.ID,
				TopicName:     topic.Name,
				Mastery:       score,
				Prerequisites: topic.Prerequisites,
			})
		}
	}
	sort.SliceStable(report.Weak, func(i, j int) bool {
		return report.Weak[i].Mastery < report.Weak[j].Mastery
	})

	for i, w := range report.Weak {
		if i == 5 {
			break
		}
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Revise %s (current %.0f%%). Prioritize prerequisite topics first.", w.TopicName, w.Mastery))
	}
	return report, nil
}

// extraKnowledge maps topic names to real-world uses; served verbatim.
var extraKnowledge = map[string][]string{
	"Arrays":      {"Used in Google Interviews", "Used in Competitive Programming", "Used in Database indexing"},
	"Linked List": {"Used in LRU Cache", "Used in Browser History", "Used in Music Playlist"},
	"Trees":       {"Used in File Systems", "Used in DOM", "Used in Decision Trees (ML)"},
	"Graphs":      {"Used in Social Networks", "Used in Maps", "Used in Recommendation systems"},
	"Limits":      {"Used in Derivatives", "Used in Physics", "Used in Continuity"},
	"Derivatives": {"Used in Optimization", "Used in Physics (velocity)", "Used in ML (gradients)"},
	"Integration": {"Used in Area under curve", "Used in Physics", "Used in Probability"},
}

type ExtraKnowledge struct {
	Topic string   `json:"topic"`
	Uses  []string `json:"uses"`
}

func (s *InsightService) ExtraKnowledge(topicName string) ExtraKnowledge {
	uses, ok := extraKnowledge[topicName]
	if !ok {
		uses = []string{"Used in advanced topics", "Used in real-world applications"}
	}
	return ExtraKnowledge{Topic: topicName, Uses: uses}
}
