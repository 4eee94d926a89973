package course

// Categories lists the catalog categories in display order.
var Categories = []string{
	"Data Science",
	"Business",
	"Computer Science",
	"Health",
	"Arts and Humanities",
	"Social Sciences",
	"Personal Development",
	"Information Technology",
}

// SeedCourses returns the catalog loaded at startup.
func SeedCourses() []Course {
	return []Course{
		{
			ID:            "1",
			Title:         "Machine Learning Fundamentals",
			Description:   "Learn the core concepts of machine learning and how to apply them to real-world problems. This course covers supervised and unsupervised learning, neural networks, and practical implementations.",
			Instructor:    "Andrew Ng",
			Institution:   "Stanford University",
			Thumbnail:     "https://images.pexels.com/photos/2599244/pexels-photo-2599244.jpeg?auto=compress&cs=tinysrgb&w=600",
			Duration:      "8 weeks",
			Level:         Intermediate,
			Category:      "Data Science",
			Rating:        4.8,
			EnrolledCount: 245000,
			Price:         USD(49),
		},
		{
			ID:            "2",
			Title:         "Introduction to React",
			Description:   "Master React.js from the ground up. Learn components, state management, hooks, and build your own applications with the most popular front-end library.",
			Instructor:    "Sarah Smith",
			Institution:   "Meta",
			Thumbnail:     "https://images.pexels.com/photos/1181373/pexels-photo-1181373.jpeg?auto=compress&cs=tinysrgb&w=600",
			Duration:      "6 weeks",
			Level:         Beginner,
			Category:      "Computer Science",
			Rating:        4.7,
			EnrolledCount: 178350,
			Price:         USD(39),
		},
		{
			ID:            "3",
			Title:         "Business Strategy and Innovation",
			Description:   "Develop the skills to create innovative business strategies. Learn from real-world case studies and understand how to identify opportunities in the market.",
			Instructor:    "Michael Porter",
			Institution:   "Harvard Business School",
			Thumbnail:     "https://images.pexels.com/photos/3182773/pexels-photo-3182773.jpeg?auto=compress&cs=tinysrgb&w=600",
			Duration:      "5 weeks",
			Level:         Advanced,
			Category:      "Business",
			Rating:        4.6,
			EnrolledCount: 123000,
			Price:         USD(59),
		},
		{
			ID:            "4",
			Title:         "Digital Marketing Essentials",
			Description:   "Learn how to create effective digital marketing campaigns across multiple platforms. Master SEO, social media marketing, email campaigns, and analytics.",
			Instructor:    "Elena Rodriguez",
			Institution:   "Google",
			Thumbnail:     "https://images.pexels.com/photos/905163/pexels-photo-905163.jpeg?auto=compress&cs=tinysrgb&w=600",
			Duration:      "4 weeks",
			Level:         Beginner,
			Category:      "Business",
			Rating:        4.5,
			EnrolledCount: 156000,
			Price:         USD(29),
		},
		{
			ID:            "5",
			Title:         "Introduction to Psychology",
			Description:   "Explore the fascinating world of human behavior and mental processes. This course covers the major theories and research methods in psychology.",
			Instructor:    "Robert Johnson",
			Institution:   "Yale University",
			Thumbnail:     "https://images.pexels.com/photos/355948/pexels-photo-355948.jpeg?auto=compress&cs=tinysrgb&w=600",
			Duration:      "7 weeks",
			Level:         Beginner,
			Category:      "Social Sciences",
			Rating:        4.9,
			EnrolledCount: 189000,
			Price:         FreePrice(),
		},
		{
			ID:            "6",
			Title:         "Data Structures and Algorithms",
			Description:   "Master essential computer science concepts with a focus on practical implementations. Learn arrays, linked lists, trees, graphs, and algorithm analysis.",
			Instructor:    "Priya Sharma",
			Institution:   "MIT",
			Thumbnail:     "https://images.pexels.com/photos/577585/pexels-photo-577585.jpeg?auto=compress&cs=tinysrgb&w=600",
			Duration:      "10 weeks",
			Level:         Intermediate,
			Category:      "Computer Science",
			Rating:        4.7,
			EnrolledCount: 134000,
			Price:         USD(49),
		},
		{
			ID:            "7",
			Title:         "Graphic Design Principles",
			Description:   "Learn the fundamentals of visual design, typography, color theory, and composition. Create compelling designs for print and digital media.",
			Instructor:    "David Wong",
			Institution:   "Rhode Island School of Design",
			Thumbnail:     "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=600",
			Duration:      "6 weeks",
			Level:         Beginner,
			Category:      "Arts and Humanities",
			Rating:        4.6,
			EnrolledCount: 98000,
			Price:         USD(39),
		},
		{
			ID:            "8",
			Title:         "Public Health and Epidemiology",
			Description:   "Understand the principles of public health and disease prevention. Study disease patterns, health policy, and strategies for improving population health.",
			Instructor:    "Maria Gonzalez",
			Institution:   "Johns Hopkins University",
			Thumbnail:     "https://images.pexels.com/photos/263402/pexels-photo-263402.jpeg?auto=compress&cs=tinysrgb&w=600",
			Duration:      "8 weeks",
			Level:         Intermediate,
			Category:      "Health",
			Rating:        4.8,
			EnrolledCount: 76000,
			Price:         USD(49),
		},
	}
}

// SeedEnrollments returns the sample user's enrollments, drawn from courses.
func SeedEnrollments(courses []Course) []EnrolledCourse {
	seed := []struct {
		id       string
		progress int
		start    string
	}{
		{"1", 65, "2023-09-15"},
		{"6", 30, "2023-10-05"},
	}

	byID := make(map[string]Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	out := make([]EnrolledCourse, 0, len(seed))
	for _, s := range seed {
		c, ok := byID[s.id]
		if !ok {
			continue
		}
		out = append(out, EnrolledCourse{
			Course:    c,
			Progress:  s.progress,
			StartDate: MustDate(s.start),
		})
	}
	return out
}
