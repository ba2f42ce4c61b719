// Package combat resolves attacks between units. Resolution is a single
// stochastic draw, not a multi-round simulation: one uniform sample decides
// the winner, then fixed formulas assign damage to both sides.
package combat

import (
	"math"
	"math/rand"

	"github.com/opd-ai/go-empire/pkg/entity"
	"github.com/opd-ai/go-empire/pkg/world"
)

// Result reports the outcome of a resolved attack.
type Result struct {
	AttackerWon      bool
	AttackerSurvived bool
	DefenderSurvived bool
	AttackerDamage   int // damage taken by the attacker
	DefenderDamage   int // damage taken by the defender
}

// CanAttack checks the preconditions for an attack: the attacker's type can
// attack, the units belong to different players, the defender is adjacent
// (wrapped x), and the attacker has movement points left.
func CanAttack(attacker, defender *entity.Unit, mapWidth int) bool {
	if attacker == nil || defender == nil {
		return false
	}
	if !attacker.Stats().CanAttack {
		return false
	}
	if attacker.PlayerID == defender.PlayerID {
		return false
	}
	if attacker.MovementPoints <= 0 {
		return false
	}
	return world.Adjacent(attacker.Position, defender.Position, mapWidth)
}

// Resolve runs one combat between attacker and defender and mutates both
// units' health and experience in place. Bonus order on defense is fixed:
// veteran, then fortification, then fortress, each floored after applying.
// Attacking always consumes the attacker's remaining movement.
func Resolve(attacker, defender *entity.Unit, defenderOnFortress bool, rng *rand.Rand) Result {
	attackStrength := attacker.Stats().Attack
	if attacker.Veteran {
		attackStrength = int(math.Floor(float64(attackStrength) * 1.5))
	}
	defenseStrength := defender.Stats().Defense
	if defender.Veteran {
		defenseStrength = int(math.Floor(float64(defenseStrength) * 1.5))
	}
	if defender.Fortified {
		defenseStrength = int(math.Floor(float64(defenseStrength) * 1.5))
	}
	if defenderOnFortress {
		defenseStrength = int(math.Floor(float64(defenseStrength) * 2.0))
	}
	if attackStrength < 1 {
		attackStrength = 1
	}
	if defenseStrength < 1 {
		defenseStrength = 1
	}

	winChance := float64(attackStrength) / float64(attackStrength+defenseStrength)
	attackerWon := rng.Float64() < winChance

	var winnerStrength, loserStrength int
	if attackerWon {
		winnerStrength, loserStrength = attackStrength, defenseStrength
	} else {
		winnerStrength, loserStrength = defenseStrength, attackStrength
	}

	loserDamage := int(math.Floor(50 + float64(winnerStrength)/float64(loserStrength)*30))
	winnerDamage := int(math.Floor(10 + rng.Float64()*20))

	result := Result{AttackerWon: attackerWon}
	if attackerWon {
		defender.TakeDamage(loserDamage)
		attacker.TakeDamage(winnerDamage)
		result.AttackerDamage = winnerDamage
		result.DefenderDamage = loserDamage
		if attacker.Alive() {
			attacker.GainExperience(10)
		}
	} else {
		attacker.TakeDamage(loserDamage)
		defender.TakeDamage(winnerDamage)
		result.AttackerDamage = loserDamage
		result.DefenderDamage = winnerDamage
		if defender.Alive() {
			defender.GainExperience(10)
		}
	}

	attacker.MovementPoints = 0
	result.AttackerSurvived = attacker.Alive()
	result.DefenderSurvived = defender.Alive()
	return result
}
