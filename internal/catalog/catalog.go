package catalog

// Project returns the project with the given id.
func (c *Catalog) Project(id int) (ProjectEntry, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return ProjectEntry{}, false
}

// Certification returns the certification with the given id.
func (c *Catalog) Certification(id int) (CertificationEntry, bool) {
	for _, cert := range c.Certifications {
		if cert.ID == id {
			return cert, true
		}
	}
	return CertificationEntry{}, false
}

// CompletedCount returns the number of certifications already earned.
func (c *Catalog) CompletedCount() int {
	n := 0
	for _, cert := range c.Certifications {
		if !cert.Upcoming() {
			n++
		}
	}
	return n
}

// InProgressCount returns the number of certifications still being pursued.
func (c *Catalog) InProgressCount() int {
	return len(c.Certifications) - c.CompletedCount()
}

// ProjectsIn returns the projects in category, or every project for "all"
// and "".
func (c *Catalog) ProjectsIn(category string) []ProjectEntry {
	if category == "" || category == "all" {
		return append([]ProjectEntry(nil), c.Projects...)
	}
	var out []ProjectEntry
	for _, p := range c.Projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Initials returns the first letter of each word of the owner's name.
func (c *Catalog) Initials() string {
	var out []rune
	start := true
	for _, r := range c.Personal.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}

// Clone returns a deep copy of c.
func (c *Catalog) Clone() *Catalog {
	out := *c
	out.Skills = Skills{
		Testing:     append([]SkillEntry(nil), c.Skills.Testing...),
		Tools:       append([]ToolEntry(nil), c.Skills.Tools...),
		Development: append([]SkillEntry(nil), c.Skills.Development...),
	}

	out.Experience = make([]ExperienceEntry, len(c.Experience))
	for i, e := range c.Experience {
		e.Achievements = cloneStrings(e.Achievements)
		out.Experience[i] = e
	}

	out.Projects = make([]ProjectEntry, len(c.Projects))
	for i, p := range c.Projects {
		p.Technologies = cloneStrings(p.Technologies)
		p.Achievements = cloneStrings(p.Achievements)
		out.Projects[i] = p
	}

	out.Certifications = make([]CertificationEntry, len(c.Certifications))
	for i, cert := range c.Certifications {
		cert.Skills = cloneStrings(cert.Skills)
		out.Certifications[i] = cert
	}

	out.Education = make([]EducationEntry, len(c.Education))
	for i, e := range c.Education {
		e.Achievements = cloneStrings(e.Achievements)
		e.Focus = cloneStrings(e.Focus)
		out.Education[i] = e
	}

	out.Testimonials = append([]Testimonial(nil), c.Testimonials...)
	out.Social = append([]SocialLink(nil), c.Social...)

	out.Copy.AboutStats = append([]Stat(nil), c.Copy.AboutStats...)
	out.Copy.ExperienceStats = append([]Stat(nil), c.Copy.ExperienceStats...)
	out.Copy.SkillsPhilosophy = append([]Section(nil), c.Copy.SkillsPhilosophy...)
	out.Copy.EducationBenefits = append([]Section(nil), c.Copy.EducationBenefits...)
	out.Copy.ContactServices = cloneStrings(c.Copy.ContactServices)
	out.Copy.FooterServices = cloneStrings(c.Copy.FooterServices)
	out.Copy.HomeTools = cloneStrings(c.Copy.HomeTools)
	return &out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
