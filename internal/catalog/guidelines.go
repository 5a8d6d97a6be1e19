package catalog

import "github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"

// Structural authoring guidance per destination platform. The max lengths
// are the documented public API limits.
func platformProfiles() map[domain.Platform]domain.PlatformProfile {
	return map[domain.Platform]domain.PlatformProfile{
		domain.PlatformTwitter: {
			Platform:  domain.PlatformTwitter,
			MaxLength: domain.TweetMaxLength,
			Structure: `Structure pour X (anciennement Twitter):
• Accroche forte avec emoji pertinent
• Message direct et impactant
• Solution Tech Aware avec bénéfice clé
• Call-to-action + lien
• 2-3 hashtags pertinents`,
		},
		domain.PlatformLinkedIn: {
			Platform:  domain.PlatformLinkedIn,
			MaxLength: domain.LinkedInMaxLength,
			Structure: `Structure pour LinkedIn:
• Accroche professionnelle avec hook
• Développement du contexte
• Points clés de la solution Tech Aware
• Exemple
• Call-to-action professionnel + lien
• 3-5 hashtags sectoriels`,
		},
		domain.PlatformFacebook: {
			Platform:  domain.PlatformFacebook,
			MaxLength: domain.FacebookMaxLength,
			Structure: `Structure pour Facebook:
• Titre captivant avec emoji
• Introduction engageante
• Développement de la problématique
• Solution Tech Aware détaillée
• Mini cas pratique ou témoignage
• Call-to-action + lien
• 2-3 hashtags pertinents`,
		},
	}
}
