package app_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"keyword-quiz/internal/app"
	"keyword-quiz/internal/domain"
	"keyword-quiz/internal/infra/memory"
)

func TestQuestionsForTierIsCumulative(t *testing.T) {
	bank := mixedBank()

	easy := bank.QuestionsForTier(domain.Easy)
	medium := bank.QuestionsForTier(domain.Medium)
	hard := bank.QuestionsForTier(domain.Hard)

	assert.Len(t, easy, 10)
	assert.Len(t, medium, 15)
	assert.Len(t, hard, 20)

	for _, tier := range domain.Difficulties {
		for _, q := range bank.QuestionsForTier(tier) {
			assert.LessOrEqual(t, q.Difficulty(), tier)
		}
	}
	assert.Subset(t, texts(hard), texts(medium))
	assert.Subset(t, texts(medium), texts(easy))
}

func TestDrawSessionBoundsAndUniqueness(t *testing.T) {
	bank := mixedBank()
	rnd := rand.New(rand.NewSource(42))

	for _, tier := range domain.Difficulties {
		pool := len(bank.QuestionsForTier(tier))
		for _, n := range []int{1, 5, 10, 50} {
			drawn := bank.DrawSession(tier, n, rnd)
			assert.LessOrEqual(t, len(drawn), n)
			assert.LessOrEqual(t, len(drawn), pool)
			assert.Equal(t, min(n, pool), len(drawn))

			seen := map[string]bool{}
			for _, q := range drawn {
				assert.False(t, seen[q.Text()], "duplicate %q", q.Text())
				seen[q.Text()] = true
				assert.True(t, tier.Includes(q.Difficulty()))
			}
		}
	}
}

func TestDrawSessionSmallPoolReturnsAll(t *testing.T) {
	bank := app.NewQuestionBank(makeQuestions(domain.Easy, 3))
	drawn := bank.DrawSession(domain.Hard, 10, keepOrder{})
	assert.Len(t, drawn, 3)
}

func TestDrawSessionDefaultsAndLeavesBankOrder(t *testing.T) {
	bank := mixedBank()
	before := texts(bank.QuestionsForTier(domain.Hard))

	drawn := bank.DrawSession(domain.Hard, 0, reverseOrder{})
	assert.Len(t, drawn, app.DefaultMaxQuestions)
	assert.Equal(t, before[len(before)-1], drawn[0].Text())
	assert.Equal(t, before, texts(bank.QuestionsForTier(domain.Hard)))
}

func TestDrawSessionIsDeterministicForSeed(t *testing.T) {
	bank := mixedBank()
	a := bank.DrawSession(domain.Hard, 10, rand.New(rand.NewSource(7)))
	b := bank.DrawSession(domain.Hard, 10, rand.New(rand.NewSource(7)))
	assert.Equal(t, texts(a), texts(b))
}

func TestLoadQuestionBank(t *testing.T) {
	bank, err := app.LoadQuestionBank(context.Background(), memory.NewBuiltinQuestionLoader())
	require.NoError(t, err)
	assert.Equal(t, 18, bank.Len())

	_, err = app.LoadQuestionBank(context.Background(), memory.NewStaticQuestionLoader(nil))
	assert.Error(t, err)
}

func texts(qs []domain.Question) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Text())
	}
	return out
}
