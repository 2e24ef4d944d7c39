package solver

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oceanlink/oceanlink-settler/models"
)

func newIntent(user string, src, dst uint64, amount uint64) models.Intent {
	id := primitive.NewObjectID()
	return models.Intent{
		Id:          &id,
		UserAddress: user,
		SrcChainID:  src,
		DstChainID:  dst,
		Amount:      models.NewAmount(amount),
		Expiry:      time.Now().Add(time.Hour).Unix(),
		Status:      models.IntentStatusPending,
	}
}

func transfer(chainID uint64, from, to string, amount uint64) models.Transfer {
	return models.Transfer{ChainID: chainID, From: from, To: to, Amount: models.NewAmount(amount)}
}

func TestNetOpposingPair(t *testing.T) {
	a := newIntent("0xaa", 1, 2, 100)
	b := newIntent("0xbb", 2, 1, 100)

	proposals := Net([]models.Intent{a, b})

	assert.Len(t, proposals, 1)
	assert.Equal(t, []models.Transfer{
		transfer(1, "0xaa", "0xbb", 100),
		transfer(2, "0xbb", "0xaa", 100),
	}, proposals[0].Transfers)
	assert.Equal(t, []primitive.ObjectID{*a.Id, *b.Id}, proposals[0].InvolvedIntentIds)
	assert.Equal(t, uint64(1), proposals[0].SrcChainID)
	assert.Equal(t, uint64(2), proposals[0].DstChainID)
}

func TestNetPartialFill(t *testing.T) {
	a := newIntent("0xaa", 1, 2, 100)
	b := newIntent("0xbb", 2, 1, 60)

	proposals := Net([]models.Intent{a, b})

	assert.Len(t, proposals, 1)
	assert.Equal(t, []models.Transfer{
		transfer(1, "0xaa", "0xbb", 60),
		transfer(2, "0xbb", "0xaa", 60),
	}, proposals[0].Transfers)
	assert.Equal(t, []primitive.ObjectID{*a.Id, *b.Id}, proposals[0].InvolvedIntentIds)
	assert.Equal(t, "100", a.Amount.String(), "loaded amount must not change")
}

func TestNetGreedyAcrossIntents(t *testing.T) {
	a1 := newIntent("0xa1", 1, 2, 50)
	a2 := newIntent("0xa2", 1, 2, 50)
	b := newIntent("0xbb", 2, 1, 80)

	proposals := Net([]models.Intent{a1, b, a2})

	assert.Len(t, proposals, 1)
	assert.Equal(t, []models.Transfer{
		transfer(1, "0xa1", "0xbb", 50),
		transfer(2, "0xbb", "0xa1", 50),
		transfer(1, "0xa2", "0xbb", 30),
		transfer(2, "0xbb", "0xa2", 30),
	}, proposals[0].Transfers)
	assert.Equal(t, []primitive.ObjectID{*a1.Id, *b.Id, *a2.Id}, proposals[0].InvolvedIntentIds)
}

func TestNetLaterIntentsUntouchedOnceNetIsSpent(t *testing.T) {
	a := newIntent("0xaa", 1, 2, 100)
	b1 := newIntent("0xb1", 2, 1, 100)
	b2 := newIntent("0xb2", 2, 1, 100)

	proposals := Net([]models.Intent{a, b1, b2})

	assert.Len(t, proposals, 1)
	assert.Len(t, proposals[0].Transfers, 2)
	assert.NotContains(t, proposals[0].InvolvedIntentIds, *b2.Id)
}

func TestNetMirrorPairNettedOnce(t *testing.T) {
	intents := []models.Intent{
		newIntent("0xaa", 1, 2, 10),
		newIntent("0xbb", 2, 1, 10),
		newIntent("0xcc", 1, 2, 10),
		newIntent("0xdd", 2, 1, 10),
	}

	proposals := Net(intents)

	assert.Len(t, proposals, 1)
	assert.Len(t, proposals[0].InvolvedIntentIds, 4)
	assert.Len(t, proposals[0].Transfers, 4)
}

func TestNetPairsInFirstAppearanceOrder(t *testing.T) {
	intents := []models.Intent{
		newIntent("0xaa", 3, 1, 10),
		newIntent("0xbb", 1, 2, 10),
		newIntent("0xcc", 2, 1, 10),
		newIntent("0xdd", 1, 3, 10),
	}

	proposals := Net(intents)

	assert.Len(t, proposals, 2)
	assert.Equal(t, uint64(3), proposals[0].SrcChainID)
	assert.Equal(t, uint64(1), proposals[0].DstChainID)
	assert.Equal(t, uint64(1), proposals[1].SrcChainID)
	assert.Equal(t, uint64(2), proposals[1].DstChainID)
}

func TestNetNothingToNet(t *testing.T) {
	t.Run("No Opposite Flow", func(t *testing.T) {
		proposals := Net([]models.Intent{
			newIntent("0xaa", 1, 2, 10),
			newIntent("0xbb", 1, 2, 10),
			newIntent("0xcc", 2, 3, 10),
		})
		assert.Empty(t, proposals)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, Net(nil))
	})

	t.Run("Zero Amounts", func(t *testing.T) {
		proposals := Net([]models.Intent{
			newIntent("0xaa", 1, 2, 0),
			newIntent("0xbb", 2, 1, 10),
		})
		assert.Empty(t, proposals)
	})
}

func TestNetInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	chains := []uint64{1, 2, 3}

	for round := 0; round < 50; round++ {
		var intents []models.Intent
		for i := 0; i < 20; i++ {
			src := chains[rng.Intn(len(chains))]
			dst := chains[rng.Intn(len(chains))]
			if src == dst {
				continue
			}
			intents = append(intents, newIntent("0xuser", src, dst, uint64(rng.Intn(1000)+1)))
		}

		byId := make(map[primitive.ObjectID]models.Intent)
		totals := make(map[pairKey]uint64)
		for _, intent := range intents {
			byId[*intent.Id] = intent
			totals[pairKey{intent.SrcChainID, intent.DstChainID}] += intent.Amount.Big().Uint64()
		}

		seen := make(map[primitive.ObjectID]bool)
		for _, proposal := range Net(intents) {
			key := pairKey{proposal.SrcChainID, proposal.DstChainID}
			bound := min(totals[key], totals[key.mirror()])

			var srcVolume, dstVolume uint64
			for _, leg := range proposal.Transfers {
				switch leg.ChainID {
				case key.src:
					srcVolume += leg.Amount.Big().Uint64()
				case key.dst:
					dstVolume += leg.Amount.Big().Uint64()
				default:
					t.Fatalf("leg on unexpected chain %d", leg.ChainID)
				}
			}
			assert.LessOrEqual(t, srcVolume, bound)
			assert.Equal(t, srcVolume, dstVolume)

			for _, id := range proposal.InvolvedIntentIds {
				assert.False(t, seen[id], "intent in two proposals")
				seen[id] = true
				_, ok := byId[id]
				assert.True(t, ok)
			}
		}
	}
}
