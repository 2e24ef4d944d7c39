// Package solver nets opposing PENDING intents between chain pairs into
// PROPOSED execution plans.
package solver

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oceanlink/oceanlink-settler/models"
)

// Proposal is the outcome of netting one chain pair against its mirror.
type Proposal struct {
	SrcChainID        uint64
	DstChainID        uint64
	Transfers         []models.Transfer
	InvolvedIntentIds []primitive.ObjectID
}

type pairKey struct {
	src uint64
	dst uint64
}

func (k pairKey) mirror() pairKey {
	return pairKey{src: k.dst, dst: k.src}
}

// remainders tracks what is left of each intent during one netting pass.
// Loaded intents are never modified.
type remainders map[primitive.ObjectID]models.Amount

// involvedSet keeps ids in insertion order and ignores repeats.
type involvedSet struct {
	seen map[primitive.ObjectID]bool
	ids  []primitive.ObjectID
}

func (s *involvedSet) add(id primitive.ObjectID) {
	if s.seen[id] {
		return
	}
	s.seen[id] = true
	s.ids = append(s.ids, id)
}

// Net matches the given intents, which must already be filtered down to
// matchable candidates and ordered oldest first. Groups are visited in the
// order their chain pair first appears, and a pair and its mirror are netted
// once together, so every intent ends up in at most one proposal.
func Net(intents []models.Intent) []Proposal {
	var order []pairKey
	groups := make(map[pairKey][]models.Intent)
	for _, intent := range intents {
		if intent.Id == nil {
			continue
		}
		key := pairKey{src: intent.SrcChainID, dst: intent.DstChainID}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], intent)
	}

	var proposals []Proposal
	paired := make(map[pairKey]bool)
	for _, key := range order {
		if paired[key] {
			continue
		}
		opposite, ok := groups[key.mirror()]
		if !ok || len(opposite) == 0 {
			continue
		}
		paired[key] = true
		paired[key.mirror()] = true

		if proposal, ok := netPair(key, groups[key], opposite); ok {
			proposals = append(proposals, proposal)
		}
	}
	return proposals
}

func netPair(key pairKey, forward, backward []models.Intent) (Proposal, bool) {
	net := models.MinAmount(total(forward), total(backward))
	if net.IsZero() {
		return Proposal{}, false
	}

	remaining := make(remainders, len(forward)+len(backward))
	for _, intent := range forward {
		remaining[*intent.Id] = intent.Amount
	}
	for _, intent := range backward {
		remaining[*intent.Id] = intent.Amount
	}

	involved := involvedSet{seen: make(map[primitive.ObjectID]bool)}
	var transfers []models.Transfer

	i, j := 0, 0
	for !net.IsZero() && i < len(forward) && j < len(backward) {
		g, h := forward[i], backward[j]
		match := models.MinAmount(remaining[*g.Id], remaining[*h.Id], net)

		if !match.IsZero() {
			transfers = append(transfers,
				models.Transfer{ChainID: key.src, From: g.UserAddress, To: h.UserAddress, Amount: match},
				models.Transfer{ChainID: key.dst, From: h.UserAddress, To: g.UserAddress, Amount: match},
			)
			remaining[*g.Id] = remaining[*g.Id].Sub(match)
			remaining[*h.Id] = remaining[*h.Id].Sub(match)
			net = net.Sub(match)
			involved.add(*g.Id)
			involved.add(*h.Id)
		}

		if remaining[*g.Id].IsZero() {
			i++
		}
		if remaining[*h.Id].IsZero() {
			j++
		}
	}

	if len(transfers) == 0 {
		return Proposal{}, false
	}
	return Proposal{
		SrcChainID:        key.src,
		DstChainID:        key.dst,
		Transfers:         transfers,
		InvolvedIntentIds: involved.ids,
	}, true
}

// total sums amounts, saturating at the maximum instead of overflowing.
func total(intents []models.Intent) models.Amount {
	sum := models.NewAmount(0)
	for _, intent := range intents {
		next, err := sum.Add(intent.Amount)
		if err != nil {
			return models.MaxAmount()
		}
		sum = next
	}
	return sum
}
