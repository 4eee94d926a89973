package lesson

// SampleCurriculum is the outline shown for every catalog course.
func SampleCurriculum() Curriculum {
	return Curriculum{
		{
			ID: "1", Title: "Introduction to the Course", Duration: "10 mins", Type: ItemVideo, IsPreview: true,
			Items: []Item{
				{ID: "1-1", Title: "Welcome to the Course", Duration: "2 mins", Type: ItemVideo},
				{ID: "1-2", Title: "Course Overview", Duration: "5 mins", Type: ItemVideo},
				{ID: "1-3", Title: "How to Get the Most Out of This Course", Duration: "3 mins", Type: ItemVideo},
			},
		},
		{
			ID: "2", Title: "Getting Started with the Fundamentals", Duration: "45 mins", Type: ItemModule,
			Items: []Item{
				{ID: "2-1", Title: "Core Concepts", Duration: "15 mins", Type: ItemVideo},
				{ID: "2-2", Title: "Basic Principles", Duration: "10 mins", Type: ItemVideo},
				{ID: "2-3", Title: "Hands-on Exercise", Duration: "15 mins", Type: ItemPractice},
				{ID: "2-4", Title: "Quiz: Test Your Knowledge", Duration: "5 mins", Type: ItemQuiz},
			},
		},
		{
			ID: "3", Title: "Advanced Techniques", Duration: "1 hr 20 mins", Type: ItemModule,
			Items: []Item{
				{ID: "3-1", Title: "Advanced Strategy 1", Duration: "20 mins", Type: ItemVideo},
				{ID: "3-2", Title: "Advanced Strategy 2", Duration: "25 mins", Type: ItemVideo},
				{ID: "3-3", Title: "Case Study Analysis", Duration: "15 mins", Type: ItemReading},
				{ID: "3-4", Title: "Practical Application", Duration: "15 mins", Type: ItemPractice},
				{ID: "3-5", Title: "Quiz: Advanced Concepts", Duration: "5 mins", Type: ItemQuiz},
			},
		},
		{
			ID: "4", Title: "Final Project and Conclusion", Duration: "45 mins", Type: ItemModule,
			Items: []Item{
				{ID: "4-1", Title: "Project Requirements", Duration: "10 mins", Type: ItemReading},
				{ID: "4-2", Title: "Final Project Walkthrough", Duration: "20 mins", Type: ItemVideo},
				{ID: "4-3", Title: "Course Summary", Duration: "10 mins", Type: ItemVideo},
				{ID: "4-4", Title: "What's Next?", Duration: "5 mins", Type: ItemVideo},
			},
		},
	}
}

func SampleTranscript() Transcript {
	return NewTranscript([]Entry{
		{Time: 0, Text: "Model situation 1: Gabriela Meets a New Colleague. You will see different interactions at the workplace, each focused on introductions."},
		{Time: 15, Text: "Please pay attention to the expressions used in the different scenarios."},
		{Time: 30, Text: "Watch Camila and Gabriela introducing themselves for the first time at Global Voice Publicity."},
		{Time: 45, Text: "It is Camila's first day of work. Good morning, are you Camila? Yes, I am, I'm the new journalist."},
	})
}

func SampleQuiz() Quiz {
	return Quiz{
		TimePoint: 30,
		Question:  "What did Gabriela say first?",
		Options: []string{
			"Hello, I'm Gabriela",
			"Nice to meet you",
			"How are you?",
			"Good morning",
		},
		CorrectAnswer: 0,
	}
}
