package catalog

// seedQuestions defines the 8-question onboarding script. Progress
// values are unique; the branch resolver decides traversal order.
// Questions 5 and 6 ship with empty options; the taxonomy fills them
// per request. The Basic Sciences key is fixed at authoring time.
var seedQuestions = []Question{
	{
		Prompt:   "What are you hoping to achieve with MedScroll?",
		Progress: 1,
		Options: []Option{
			{Title: "Clinical Skills", Route: "Clinical Skills"},
			{Title: "Medical Knowledge", Route: "Medical Knowledge"},
			{Title: "Others", Route: "Others"},
		},
	},
	{
		Prompt:   "How did you hear about MedScroll?",
		Progress: 2,
		Options: []Option{
			{Title: "LinkedIn", Route: "LinkedIn"},
			{Title: "Facebook", Route: "Facebook"},
			{Title: "Instagram", Route: "Instagram"},
			{Title: "X(formerly called Twitter)", Route: "X(formerly called Twitter)"},
			{Title: "Google", Route: "Google"},
			{Title: "TikTok", Route: "TikTok"},
			{Title: "Appstore", Route: "Appstore"},
			{Title: "Others", Route: "Others"},
		},
	},
	{
		Prompt:   "What's your name, please?",
		Progress: 3,
	},
	{
		Prompt:   "Are you a student, doctor, nurse, or another healthcare professional?",
		Progress: 4,
		Options: []Option{
			{Title: "Doctor", Route: "Doctor"},
			{Title: "Student", Route: "Student"},
			{Title: "Nurse", Route: "Nurse"},
			{Title: "Others", Route: "Others"},
		},
	},
	{
		Prompt:   "Which specialty are you focusing on?",
		Progress: 5,
	},
	{
		Prompt:   "Which subspecialty are you focusing on?",
		Progress: 6,
	},
	{
		Prompt:   "Do you specialize in a particular area, like critical care, pediatrics, or rehabilitation?",
		Progress: 7,
	},
	{
		Prompt:   "Would you like to try AI-powered quizzes or case recall scenarios? Tap a button to get started!",
		Progress: 8,
		Options: []Option{
			{Title: "Case Recall", Route: "Recall"},
			{Title: "Medsynopsis", Route: "Medsynopsis"},
			{Title: "Basic Sciences", Route: "Trivia", Key: "Basic Sciences"},
			{Title: "General Trivia", Route: "General"},
			{Title: "Open Ended Questions", Route: "OpenEnded"},
			{Title: "Medical Trivia", Route: "Trivia"},
		},
	},
}
