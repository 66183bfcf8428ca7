package catalog

const unsplash = "https://images.unsplash.com/"

// Default returns the built-in portfolio content. Each call returns a fresh
// copy.
func Default() *Catalog {
	return &Catalog{
		Personal: PersonalInfo{
			Name:         "Khadija Altaf",
			Designation:  "Software Quality Assurance Engineer",
			Subtitle:     "QA Automation Specialist",
			Tagline:      "Ensuring seamless software experiences through quality-driven testing & automation",
			Location:     "Karachi, Pakistan",
			Email:        "khadija.altaf@example.com",
			Phone:        "+92 300 1234567",
			Experience:   "3+ Years",
			Education:    "BSc Mathematics",
			GPA:          "3.70 CGPA",
			ProfileImage: unsplash + "photo-1494790108755-2616b612b714?w=400&h=400&fit=crop&crop=face",
			Resume:       "/resume-khadija-altaf.pdf",
		},
		Skills: Skills{
			Testing: []SkillEntry{
				{Name: "Manual Testing", Level: 95, Description: "Functional, Integration & System Testing"},
				{Name: "Test Automation", Level: 85, Description: "Cypress, Selenium WebDriver"},
				{Name: "API Testing", Level: 90, Description: "Postman, REST APIs"},
				{Name: "Bug Tracking", Level: 92, Description: "Jira, TestRail, Azure DevOps"},
				{Name: "Test Planning", Level: 88, Description: "Test Cases, Strategy & Documentation"},
			},
			Tools: []ToolEntry{
				{Name: "Cypress", Icon: "🔧", Description: "End-to-end test automation"},
				{Name: "Jira", Icon: "🐛", Description: "Issue tracking & project management"},
				{Name: "TestRail", Icon: "📋", Description: "Test case management"},
				{Name: "Postman", Icon: "🚀", Description: "API testing & documentation"},
				{Name: "GitHub", Icon: "💻", Description: "Version control & collaboration"},
				{Name: "Azure DevOps", Icon: "☁️", Description: "CI/CD & project management"},
			},
			Development: []SkillEntry{
				{Name: "JavaScript", Level: 75, Description: "ES6+, Test Scripts"},
				{Name: "React", Level: 70, Description: "Component-based UI development"},
				{Name: "Node.js", Level: 65, Description: "Backend development basics"},
				{Name: "MongoDB", Level: 60, Description: "Database operations & queries"},
				{Name: "HTML/CSS", Level: 85, Description: "UI/UX implementation"},
			},
		},
		Experience: []ExperienceEntry{
			{
				ID:          1,
				Title:       "SQA Professional",
				Company:     "MyMo",
				Period:      "2021 - Present",
				Location:    "Karachi, Pakistan",
				Type:        "Full-time",
				Description: "Leading quality assurance initiatives for web and mobile applications",
				Achievements: []string{
					"Automated 50+ critical test cases using Cypress",
					"Reduced bug escape rate by 40% through comprehensive testing",
					"Implemented API testing framework with Postman",
					"Mentored junior QA team members on best practices",
				},
			},
			{
				ID:          2,
				Title:       "Junior Developer",
				Company:     "Benchmark",
				Period:      "2020 - 2021",
				Location:    "Remote",
				Type:        "Remote",
				Description: "Supporting QA automation and contributing to UI bug fixes",
				Achievements: []string{
					"Developed automated test scripts for regression testing",
					"Fixed critical UI bugs improving user experience",
					"Collaborated with development team on quality standards",
					"Created comprehensive test documentation",
				},
			},
			{
				ID:          3,
				Title:       "Mathematics Teacher",
				Company:     "The Inspiration Model School",
				Period:      "2019 - 2020",
				Location:    "Karachi, Pakistan",
				Type:        "Full-time",
				Description: "Teaching mathematics and developing analytical thinking skills",
				Achievements: []string{
					"Improved student performance by 25% through innovative teaching",
					"Developed curriculum for advanced mathematics courses",
					"Enhanced problem-solving and analytical skills",
					"Built strong communication and presentation abilities",
				},
			},
		},
		Projects: []ProjectEntry{
			{
				ID:           1,
				Title:        "Cypress E2E Automation Suite",
				Description:  "Comprehensive end-to-end testing framework for web applications",
				Technologies: []string{"Cypress", "JavaScript", "GitHub Actions"},
				Image:        unsplash + "photo-1551650975-87deedd944c3?w=600&h=400&fit=crop",
				GitHub:       "https://github.com/khadija-altaf/cypress-automation",
				Achievements: []string{"50+ Test Cases", "CI/CD Integration", "Cross-browser Testing"},
				Status:       StatusActive,
				Category:     CategoryAutomation,
				Snippet: "A login flow covered end to end:\n\n" +
					"```javascript\n" +
					"describe('login', () => {\n" +
					"  it('signs in with valid credentials', () => {\n" +
					"    cy.visit('/login')\n" +
					"    cy.get('[data-cy=email]').type('qa@example.com')\n" +
					"    cy.get('[data-cy=password]').type('secret')\n" +
					"    cy.get('[data-cy=submit]').click()\n" +
					"    cy.url().should('include', '/dashboard')\n" +
					"  })\n" +
					"})\n" +
					"```\n",
			},
			{
				ID:           2,
				Title:        "MyMo QA Dashboard",
				Description:  "Real-time testing metrics and bug tracking dashboard",
				Technologies: []string{"React", "Chart.js", "API Integration"},
				Image:        unsplash + "photo-1460925895917-afdab827c52f?w=600&h=400&fit=crop",
				Link:         "#",
				Achievements: []string{"Real-time Metrics", "Bug Analytics", "Team Collaboration"},
				Status:       StatusInProduction,
				Category:     CategoryDashboard,
			},
			{
				ID:           3,
				Title:        "API Testing Framework",
				Description:  "Automated API testing solution with comprehensive reporting",
				Technologies: []string{"Postman", "Newman", "Jenkins"},
				Image:        unsplash + "photo-1558494949-ef010cbdcc31?w=600&h=400&fit=crop",
				GitHub:       "https://github.com/khadija-altaf/api-testing",
				Achievements: []string{"100+ API Tests", "Automated Reports", "CI Integration"},
				Status:       StatusCompleted,
				Category:     CategoryAutomation,
				Snippet: "Collections run headless in CI:\n\n" +
					"```bash\n" +
					"newman run api-tests.postman_collection.json \\\n" +
					"  -e staging.postman_environment.json \\\n" +
					"  -r cli,htmlextra\n" +
					"```\n",
			},
		},
		Certifications: []CertificationEntry{
			{
				ID:     1,
				Title:  "MERN Stack Development",
				Issuer: "BanoQabil",
				Date:   "2023",
				Image:  unsplash + "photo-1516321318423-f06f85e504b3?w=300&h=200&fit=crop",
				Skills: []string{"React", "Node.js", "MongoDB", "Express.js"},
			},
			{
				ID:     2,
				Title:  "Digital Marketing",
				Issuer: "Bahria University",
				Date:   "2022",
				Image:  unsplash + "photo-1432888622747-4eb9a8efeb07?w=300&h=200&fit=crop",
				Skills: []string{"SEO", "Social Media", "Content Strategy", "Analytics"},
			},
			{
				ID:     3,
				Title:  "ISTQB Foundation Level",
				Issuer: "ISTQB",
				Date:   "Coming Soon",
				Image:  unsplash + "photo-1434030216411-0b793f4b4173?w=300&h=200&fit=crop",
				Skills: []string{"Testing Principles", "Test Design", "Test Management"},
				Status: StatusUpcoming,
			},
		},
		Education: []EducationEntry{
			{
				ID:          1,
				Degree:      "BSc Mathematics",
				Institution: "Jinnah University for Women",
				Period:      "2016 - 2020",
				GPA:         "3.70 CGPA",
				Minor:       "Statistics & Physics",
				Image:       unsplash + "photo-1541339907198-e08756dedf3f?w=400&h=300&fit=crop",
				Achievements: []string{
					"Mathematics Excellence Award",
					"Statistics Research Project",
					"Dean's Honor List",
				},
			},
			{
				ID:          2,
				Degree:      "Software Development",
				Institution: "Aptech",
				Period:      "2023 - Present",
				Status:      StatusOngoing,
				Image:       unsplash + "photo-1517077304055-6e89abbf09b0?w=400&h=300&fit=crop",
				Focus: []string{
					"Advanced Programming",
					"Software Architecture",
					"Quality Assurance",
				},
			},
		},
		Testimonials: []Testimonial{
			{
				ID:       1,
				Name:     "Sarah Ahmed",
				Position: "Lead Developer, MyMo",
				Content:  "Khadija's attention to detail and systematic approach to QA has significantly improved our software quality. Her automation skills are exceptional.",
				Image:    unsplash + "photo-1494790108755-2616b612b714?w=100&h=100&fit=crop&crop=face",
				Rating:   5,
			},
			{
				ID:       2,
				Name:     "Ahmad Khan",
				Position: "Project Manager, Benchmark",
				Content:  "Working with Khadija was a great experience. Her QA expertise and problem-solving abilities helped us deliver bug-free releases consistently.",
				Image:    unsplash + "photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
				Rating:   5,
			},
		},
		Social: []SocialLink{
			{Name: "LinkedIn", URL: "https://linkedin.com/in/khadija-altaf", Icon: "linkedin"},
			{Name: "GitHub", URL: "https://github.com/khadija-altaf", Icon: "github"},
			{Name: "Email", URL: "mailto:khadija.altaf@example.com", Icon: "mail"},
		},
		Copy: defaultCopy(),
	}
}

func defaultCopy() Copy {
	return Copy{
		AboutIntro: "Passionate QA Engineer dedicated to ensuring software excellence through " +
			"comprehensive testing and innovative automation solutions.",
		AboutBio: "### Quality-Driven Professional\n\n" +
			"With over 3 years of experience in Software Quality Assurance, I specialize in " +
			"creating robust testing frameworks and automation solutions that ensure exceptional " +
			"software quality. My expertise spans functional testing, API testing, and " +
			"end-to-end automation using cutting-edge tools like **Cypress** and **Selenium**.\n\n" +
			"I believe in a systematic approach to QA, combining manual testing expertise " +
			"with powerful automation to deliver bug-free, user-friendly applications. " +
			"My background in mathematics provides me with strong analytical and " +
			"problem-solving skills that I leverage to identify edge cases and " +
			"ensure comprehensive test coverage.\n",
		AboutBeyond: Section{
			Title: "Beyond QA",
			Body: "When I'm not hunting bugs, I enjoy exploring UI/UX design principles and " +
				"expanding my full-stack development skills with the MERN stack. This diverse " +
				"background helps me understand the complete software development lifecycle " +
				"and collaborate effectively with development teams.",
		},
		AboutStats: []Stat{
			{Value: "50+", Label: "Test Cases Automated"},
			{Value: "40%", Label: "Bug Escape Reduction"},
			{Value: "100+", Label: "Critical Bugs Found"},
		},
		SkillsIntro: "A comprehensive overview of my technical skills and the tools I use to ensure " +
			"software quality and deliver exceptional results.",
		SkillsPhilosophy: []Section{
			{
				Title: "Testing Philosophy",
				Body: "I believe in a comprehensive approach to quality assurance that combines " +
					"manual testing expertise with automated solutions. My focus is on creating " +
					"maintainable test suites that provide confidence in software releases while " +
					"enabling rapid development cycles.",
			},
			{
				Title: "Continuous Learning",
				Body: "The field of software testing is constantly evolving, and I'm committed to " +
					"staying current with the latest tools and methodologies. I regularly explore " +
					"new testing frameworks, attend webinars, and contribute to the QA community " +
					"through knowledge sharing.",
			},
		},
		ExperienceIntro: "A journey through my career in software quality assurance, showcasing growth, " +
			"achievements, and the impact I've made in each role.",
		ExperienceStats: []Stat{
			{Value: "3+", Label: "Years Experience"},
			{Value: "50+", Label: "Tests Automated"},
			{Value: "3", Label: "Companies"},
			{Value: "100%", Label: "Team Satisfaction"},
		},
		ProjectsIntro: "A showcase of my QA automation projects, testing frameworks, and " +
			"quality assurance solutions that demonstrate my technical expertise.",
		CertificationsIntro: "Professional certifications that validate my expertise and commitment " +
			"to continuous learning in quality assurance and software development.",
		PlannedCerts: "5+",
		EducationIntro: "My academic journey has provided me with strong analytical foundations " +
			"and continuous learning experiences that enhance my QA expertise.",
		EducationBenefits: []Section{
			{
				Title: "Analytical Thinking",
				Body: "Mathematics degree developed strong logical reasoning and problem-solving " +
					"skills essential for identifying edge cases and creating comprehensive test scenarios.",
			},
			{
				Title: "Statistical Knowledge",
				Body: "Statistics and physics minor provides foundation for understanding test " +
					"coverage metrics, defect analysis, and quality measurement techniques.",
			},
			{
				Title: "Continuous Learning",
				Body: "Currently pursuing software development studies to deepen technical " +
					"understanding and bridge the gap between development and QA teams.",
			},
		},
		ContactIntro: "Ready to discuss your QA needs? I'd love to hear about your project " +
			"and explore how I can help ensure your software's quality and reliability.",
		ContactServices: []string{
			"Manual Testing",
			"Test Automation",
			"API Testing",
			"Performance Testing",
			"Bug Tracking",
			"QA Consulting",
			"Test Planning",
			"Team Training",
		},
		FooterBlurb: "Passionate about delivering high-quality software through comprehensive testing, " +
			"automation, and quality assurance best practices.",
		FooterServices: []string{
			"Manual Testing",
			"Test Automation",
			"API Testing",
			"Performance Testing",
			"QA Consulting",
			"Bug Tracking",
		},
		HomeTools: []string{"Cypress", "Jira", "TestRail"},
	}
}
