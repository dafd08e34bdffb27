package model

// Compiled-in fallbacks for the public site. Sections render these when the
// database has no rows yet (or a table is missing mid-rollout), so the site
// never shows an empty section.

// Default hero copy.
const (
	DefaultHeroName       = "Lorenza Gonzalez"
	DefaultHeroSubtitleES = "Líder en mercadeo en red con +20 años de experiencia. Resultados comprobados."
	DefaultHeroSubtitlePT = "Líder em marketing de rede com +20 anos de experiência. Resultados comprovados."
)

// DefaultContactInfo returns the fallback contact settings.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		WhatsappNumber: "595982256688",
		USDTWallet:     "",
		USDTNetwork:    NetworkTRC20,
		SellsUSDT:      false,
	}
}

// DefaultTestimonials returns the fallback testimonial list.
func DefaultTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:     1,
			Name:   "María García",
			RoleES: "Miembro del equipo",
			RolePT: "Membro da equipe",
			TextES: "Gracias a Lorenza logré alcanzar mis metas financieras en tiempo récord. Su liderazgo y mentoría son invaluables.",
			TextPT: "Graças à Lorenza consegui alcançar minhas metas financeiras em tempo recorde. Sua liderança e mentoria são inestimáveis.",
			Rating: 5, OrderIndex: 0, Active: true,
		},
		{
			ID:     2,
			Name:   "Carlos Rodríguez",
			RoleES: "Líder de equipo",
			RolePT: "Líder de equipe",
			TextES: "El sistema de trabajo de Lorenza es efectivo y comprobado. En 6 meses dupliqué mis ingresos.",
			TextPT: "O sistema de trabalho da Lorenza é eficaz e comprovado. Em 6 meses dobrei minha renda.",
			Rating: 5, OrderIndex: 1, Active: true,
		},
		{
			ID:     3,
			Name:   "Ana Martínez",
			RoleES: "Emprendedora",
			RolePT: "Empreendedora",
			TextES: "Nunca pensé que podría tener mi propio negocio. Lorenza me mostró el camino y me acompañó en cada paso.",
			TextPT: "Nunca pensei que poderia ter meu próprio negócio. Lorenza me mostrou o caminho e me acompanhou em cada passo.",
			Rating: 5, OrderIndex: 2, Active: true,
		},
	}
}

// DefaultCareerHighlights returns the fallback about-section cards.
func DefaultCareerHighlights() []CareerHighlight {
	return []CareerHighlight{
		{
			ID: 1, Icon: IconAward, OrderIndex: 1,
			TitleES:       "Experiencia Comprobada",
			TitlePT:       "Experiência Comprovada",
			DescriptionES: "Más de 10 años transformando negocios y creando oportunidades de crecimiento.",
			DescriptionPT: "Mais de 10 anos transformando negócios e criando oportunidades de crescimento.",
		},
		{
			ID: 2, Icon: IconUsers, OrderIndex: 2,
			TitleES:       "Equipo de Éxito",
			TitlePT:       "Equipe de Sucesso",
			DescriptionES: "Liderando equipos comprometidos hacia metas extraordinarias.",
			DescriptionPT: "Liderando equipes comprometidas rumo a metas extraordinárias.",
		},
		{
			ID: 3, Icon: IconTrending, OrderIndex: 3,
			TitleES:       "Resultados Reales",
			TitlePT:       "Resultados Reais",
			DescriptionES: "Estrategias probadas que generan crecimiento sostenible.",
			DescriptionPT: "Estratégias comprovadas que geram crescimento sustentável.",
		},
	}
}
