package catalog

import "github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"

// Brand voice catalogs. The 2 x 2 x 3 combinations give twelve distinct
// voices for a generation to draw from.
var brandStyles = []domain.VoiceElement{
	{
		Name:        "Direct et accessible",
		Description: "S'adresse à l'audience comme à des amis ou des collègues, créant une proximité naturelle. Utilise un langage simple et des exemples concrets.",
	},
	{
		Name:        "Pédagogique",
		Description: "Simplifie des concepts complexes, construit une progression logique avec des anecdotes et des références culturelles.",
	},
}

var brandTones = []domain.VoiceElement{
	{
		Name:        "Engagé et critique",
		Description: "Éveille une prise de conscience en questionnant les implications des tendances technologiques.",
	},
	{
		Name:        "Énergique et captivant",
		Description: "Emploie des termes marquants et un vocabulaire imagé pour captiver l'attention sur des sujets complexes.",
	},
}

var brandPersonalities = []domain.VoiceElement{
	{
		Name:        "Curieux et vigilant",
		Description: "Montre une grande curiosité et une prudence face aux nouvelles technologies.",
	},
	{
		Name:        "Transparent et engagé",
		Description: "Valorise la transparence et se soucie du bien-être de son audience.",
	},
	{
		Name:        "Visionnaire et prudent",
		Description: "Présente une vision du futur tout en avertissant des risques potentiels.",
	},
}
