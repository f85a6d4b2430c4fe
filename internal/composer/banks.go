package composer

// Phrase banks. Interpolated templates carry exactly one %s.

var openings = []string{
	"You are",
	"I see you",
	"Your soul",
	"You have",
	"Within you",
	"Your heart",
	"You carry",
	"Your being",
	"You embody",
	"You radiate",
}

var addressOpenings = []string{
	"%s, you are",
	"Dear %s,",
	"Beloved %s,",
	"Sacred %s,",
	"%s, I see you",
	"Beautiful %s,",
	"%s, you have",
	"Divine %s,",
	"%s, your soul",
	"Precious %s,",
}

var identities = []string{
	"a magnificent being of infinite potential",
	"a creator of realities",
	"a force of nature",
	"a spark of divine light",
	"a masterpiece in progress",
	"a vessel of transformation",
	"a bridge between dreams and reality",
	"a co-creator with the universe",
	"a manifestation of pure possibility",
	"a living miracle",
	"a beacon of light",
	"a catalyst for change",
	"a guardian of your own destiny",
	"a channel for divine wisdom",
	"a reflection of infinite love",
}

var desireOpeners = []string{
	"Your longing for %s is",
	"The desire in your heart for %s represents",
	"Your soul's calling for %s is",
	"The yearning you feel for %s is",
	"Your vision of %s is",
	"The dream you hold for %s is",
	"Your aspiration for %s is",
	"The passion you have for %s is",
	"Your intention for %s is",
	"The purpose you see in %s is",
}

var desireMeanings = []string{
	"not just a wish—it's a calling from your soul",
	"the universe speaking through your heart",
	"destiny calling your name",
	"a sacred contract with your future self",
	"the voice of your higher self guiding you",
	"a blueprint for your evolution",
	"the universe conspiring in your favor",
	"a memory from your future, calling you home",
	"the energy of creation flowing through you",
	"a divine assignment for your growth",
	"the cosmos aligning with your purpose",
	"your soul's GPS pointing toward fulfillment",
	"the quantum field responding to your frequency",
	"a bridge between who you are and who you're becoming",
	"the infinite intelligence working through you",
}

var fearTransformations = []string{
	"The fear of %s is like a shadow that disappears when you turn on the light of your awareness",
	"%s has been whispering doubts in your ear, but those whispers are just echoes of old stories",
	"The %s you're experiencing is the old version of yourself trying to protect you",
	"%s is but a mirage on the path—it appears real, but it has no substance",
	"Your fear of %s is understandable, but it's also holding you back from what you truly deserve",
	"%s is like a cloud passing over the sun—temporary and powerless against your light",
	"The %s that once seemed so real is dissolving in the presence of your courage",
	"Your fear of %s is a teacher showing you where you're ready to grow",
	"%s is the universe's way of asking you to trust yourself more deeply",
}

var blessingIntegrations = []string{
	"With the sacred energy of %s flowing through you, you are divinely supported",
	"Feel the loving presence of %s wrapping around you like a warm embrace",
	"Channel the power of %s—let their strength, wisdom, and grace flow through you",
	"Open yourself to the infinite wisdom of %s, let their energy merge with yours",
	"Draw inspiration from %s—their qualities are already part of who you are",
	"The spirit of %s is guiding you forward with gentle wisdom",
	"Let the energy of %s amplify your own inner light",
	"With %s as your ally, you are unstoppable in your journey",
	"The blessing of %s is already yours—you just need to claim it",
	"Feel the resonance between your soul and the energy of %s",
}

var outcomePhrases = []string{
	"Your vision of %s is already taking shape in the quantum field of possibilities",
	"The reality you envision—%s—exists already in the realm of infinite possibilities",
	"Your ideal outcome of %s is not just a dream—it's a memory from your future self",
	"Your vision of %s is not just possible—it's inevitable",
	"The reality you seek—%s—is not creating itself; you are creating it",
	"Your outcome of %s is not just a goal—it's a promise from the universe",
	"The manifestation of %s is already in motion, guided by your intention",
	"Your vision for %s is the universe's way of saying \"yes\" to your soul",
	"The reality of %s is not distant—it's drawing closer with every breath",
	"Your outcome of %s is not just desired—it's destined",
}

var empowermentPhrases = []string{
	"Every breath you take, every step you make, you are co-creating this reality",
	"You are not just worthy of this—you are destined for it",
	"Trust this calling. You are exactly where you need to be",
	"You are the architect of your reality, and you're building something extraordinary",
	"Every moment, you are drawing this beautiful future closer to you",
	"You have the skills, the resources, and the inner strength to make this happen",
	"The universe is your co-creator, and together, you are unstoppable",
	"You are not creating it; you are remembering it",
	"Trust yourself, take action, and watch as your reality transforms",
	"You are capable, you are deserving, and you are loved",
	"Everything is unfolding perfectly in divine timing",
	"You are a magnet for miracles and manifestations",
	"Your power to create is infinite and unstoppable",
	"You are the miracle you've been waiting for",
	"The universe is conspiring to bring you everything you desire",
}

var closings = []string{
	"You are exactly where you need to be, and everything is unfolding perfectly.",
	"Trust the process, trust yourself, and trust the magic that is you.",
	"You are not just dreaming—you are becoming.",
	"The best is yet to come, and it's already on its way to you.",
	"You are the answer to your own prayers.",
	"Everything you need is already within you.",
	"You are the creator of your own reality.",
	"The universe is rooting for you.",
	"You are more powerful than you know.",
	"Your potential is limitless and your future is bright.",
}

// Bank identifies one phrase slot of a composed affirmation.
type Bank int

const (
	BankOpenings Bank = iota
	BankAddressOpenings
	BankIdentities
	BankDesireOpeners
	BankDesireMeanings
	BankFearTransformations
	BankBlessingIntegrations
	BankOutcomePhrases
	BankEmpowermentPhrases
	BankClosings
)

// Phrases returns a copy of the templates in the given bank. Compose reads
// the tables directly; Phrases exists for callers such as tests that need to
// recognise phrases in composed text.
func Phrases(b Bank) []string {
	var src []string
	switch b {
	case BankOpenings:
		src = openings
	case BankAddressOpenings:
		src = addressOpenings
	case BankIdentities:
		src = identities
	case BankDesireOpeners:
		src = desireOpeners
	case BankDesireMeanings:
		src = desireMeanings
	case BankFearTransformations:
		src = fearTransformations
	case BankBlessingIntegrations:
		src = blessingIntegrations
	case BankOutcomePhrases:
		src = outcomePhrases
	case BankEmpowermentPhrases:
		src = empowermentPhrases
	case BankClosings:
		src = closings
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
