package service

import "problem_app/internal/domain/model"

var defaultCategories = []model.Category{
	{Key: "frontend", Name: "Frontend Development", Icon: "🎨", Color: "#4CAF50", ProblemCount: 5, EasyCount: 3, MediumCount: 2, HardCount: 0},
	{Key: "api-backend", Name: "API & Backend", Icon: "⚙️", Color: "#2196F3", ProblemCount: 3, EasyCount: 0, MediumCount: 3, HardCount: 0},
	{Key: "web-development", Name: "Web Development", Icon: "🌐", Color: "#FF9800", ProblemCount: 2, EasyCount: 0, MediumCount: 1, HardCount: 1},
	{Key: "security", Name: "Security", Icon: "🔒", Color: "#F44336", ProblemCount: 3, EasyCount: 0, MediumCount: 1, HardCount: 2},
	{Key: "database", Name: "Database", Icon: "🗄️", Color: "#9C27B0", ProblemCount: 2, EasyCount: 0, MediumCount: 2, HardCount: 0},
	{Key: "mobile-development", Name: "Mobile Development", Icon: "📱", Color: "#00BCD4", ProblemCount: 4, EasyCount: 1, MediumCount: 2, HardCount: 1},
	{Key: "devops-cloud", Name: "DevOps & Cloud", Icon: "☁️", Color: "#FF5722", ProblemCount: 3, EasyCount: 0, MediumCount: 2, HardCount: 1},
	{Key: "ai-ml", Name: "AI & Machine Learning", Icon: "🤖", Color: "#673AB7", ProblemCount: 5, EasyCount: 1, MediumCount: 3, HardCount: 1},
}

var defaultProblems = []model.Problem{
	{
		ProblemNumber:  1,
		Title:          "Build a Responsive Calculator",
		Description:    "Create a fully functional calculator with responsive design using HTML, CSS, and JavaScript.",
		Difficulty:     model.DifficultyEasy,
		Category:       "Frontend Development",
		Tags:           []string{"HTML", "CSS", "JavaScript", "Responsive Design"},
		AcceptanceRate: 85,
		Likes:          156,
	},
	{
		ProblemNumber:  2,
		Title:          "Create a Todo List App",
		Description:    "Build a todo list application with add, edit, delete, and mark complete functionality.",
		Difficulty:     model.DifficultyEasy,
		Category:       "Frontend Development",
		Tags:           []string{"React", "State Management", "CRUD"},
		AcceptanceRate: 78,
		Likes:          203,
	},
	{
		ProblemNumber:  3,
		Title:          "Build a REST API with Authentication",
		Description:    "Create a RESTful API with JWT authentication, user registration, and protected endpoints.",
		Difficulty:     model.DifficultyMedium,
		Category:       "API & Backend",
		Tags:           []string{"API", "Authentication", "Node.js", "Express"},
		AcceptanceRate: 68,
		Likes:          245,
	},
	{
		ProblemNumber:  4,
		Title:          "Implement User Authentication System",
		Description:    "Build a complete authentication system with login, registration, password reset, and session management.",
		Difficulty:     model.DifficultyMedium,
		Category:       "API & Backend",
		Tags:           []string{"Authentication", "Security", "JWT", "Bcrypt"},
		AcceptanceRate: 72,
		Likes:          189,
	},
	{
		ProblemNumber:  5,
		Title:          "Create a Full-Stack E-commerce Site",
		Description:    "Build a complete e-commerce website with product catalog, shopping cart, and payment integration.",
		Difficulty:     model.DifficultyHard,
		Category:       "Web Development",
		Tags:           []string{"Full-Stack", "E-commerce", "Payment", "Database"},
		AcceptanceRate: 45,
		Likes:          312,
	},
	{
		ProblemNumber:  6,
		Title:          "Build a Real-time Chat Application",
		Description:    "Create a real-time chat application using WebSockets with user rooms and message history.",
		Difficulty:     model.DifficultyMedium,
		Category:       "Web Development",
		Tags:           []string{"WebSockets", "Real-time", "Socket.io", "Node.js"},
		AcceptanceRate: 58,
		Likes:          267,
	},
	{
		ProblemNumber:  7,
		Title:          "Implement Password Security Best Practices",
		Description:    "Create a secure password management system with encryption, salting, and validation.",
		Difficulty:     model.DifficultyHard,
		Category:       "Security",
		Tags:           []string{"Security", "Encryption", "Password Hashing", "Validation"},
		AcceptanceRate: 42,
		Likes:          178,
	},
	{
		ProblemNumber:  8,
		Title:          "Build a Secure API Gateway",
		Description:    "Implement an API gateway with rate limiting, authentication, and request validation.",
		Difficulty:     model.DifficultyMedium,
		Category:       "Security",
		Tags:           []string{"API Gateway", "Rate Limiting", "Security", "Microservices"},
		AcceptanceRate: 55,
		Likes:          201,
	},
	{
		ProblemNumber:  9,
		Title:          "Design a Database Schema for Social Media",
		Description:    "Create an optimized database schema for a social media platform with users, posts, and relationships.",
		Difficulty:     model.DifficultyHard,
		Category:       "Security",
		Tags:           []string{"Database Design", "SQL", "Relationships", "Optimization"},
		AcceptanceRate: 38,
		Likes:          234,
	},
	{
		ProblemNumber:  10,
		Title:          "Optimize Database Queries",
		Description:    "Analyze and optimize slow database queries using indexing and query optimization techniques.",
		Difficulty:     model.DifficultyMedium,
		Category:       "Database",
		Tags:           []string{"Database", "Optimization", "Indexing", "Performance"},
		AcceptanceRate: 62,
		Likes:          145,
	},
	{
		ProblemNumber:  11,
		Title:          "Implement Database Migrations",
		Description:    "Create a database migration system for version control and schema changes.",
		Difficulty:     model.DifficultyMedium,
		Category:       "Database",
		Tags:           []string{"Database", "Migrations", "Version Control", "Schema"},
		AcceptanceRate: 58,
		Likes:          167,
	},
	{
		ProblemNumber:  12,
		Title:          "Create a Dynamic Form Builder",
		Description:    "Build a form builder that allows users to create custom forms with validation rules.",
		Difficulty:     model.DifficultyEasy,
		Category:       "Frontend Development",
		Tags:           []string{"Forms", "Dynamic", "Validation", "UI Components"},
		AcceptanceRate: 82,
		Likes:          198,
	},
	{
		ProblemNumber:  13,
		Title:          "Build a Data Visualization Dashboard",
		Description:    "Create an interactive dashboard with charts and graphs using modern visualization libraries.",
		Difficulty:     model.DifficultyMedium,
		Category:       "Frontend Development",
		Tags:           []string{"Data Visualization", "Charts", "Dashboard", "D3.js"},
		AcceptanceRate: 65,
		Likes:          223,
	},
	{
		ProblemNumber:  14,
		Title:          "Build a Cross-Platform Mobile App",
		Description:    "Create a mobile application using React Native or Flutter with offline capabilities and push notifications.",
		Difficulty:     model.DifficultyMedium,
		Category:       "Mobile Development",
		Tags:           []string{"React Native", "Flutter", "Mobile", "Cross-Platform"},
		AcceptanceRate: 58,
		Likes:          189,
	},
	{
		ProblemNumber:  15,
		Title:          "Implement Mobile Authentication",
		Description:    "Build biometric authentication and secure token storage for mobile applications.",
		Difficulty:     model.DifficultyHard,
		Category:       "Mobile Development",
		Tags:           []string{"Biometrics", "Authentication", "Mobile Security", "Token Storage"},
		AcceptanceRate: 42,
		Likes:          156,
	},
	{
		ProblemNumber:  16,
		Title:          "Create a Mobile Game",
		Description:    "Develop a simple mobile game with touch controls, scoring system, and local leaderboards.",
		Difficulty:     model.DifficultyEasy,
		Category:       "Mobile Development",
		Tags:           []string{"Game Development", "Touch Controls", "Mobile", "Unity"},
		AcceptanceRate: 75,
		Likes:          267,
	},
	{
		ProblemNumber:  17,
		Title:          "Build a Real-time Chat Mobile App",
		Description:    "Create a mobile chat application with real-time messaging, file sharing, and group chat features.",
		Difficulty:     model.DifficultyMedium,
		Category:       "Mobile Development",
		Tags:           []string{"Real-time", "Chat", "Mobile", "WebSockets"},
		AcceptanceRate: 62,
		Likes:          234,
	},
	{
		ProblemNumber:  18,
		Title:          "Set up CI/CD Pipeline",
		Description:    "Create a complete CI/CD pipeline using GitHub Actions, Docker, and cloud deployment.",
		Difficulty:     model.DifficultyMedium,
		Category:       "DevOps & Cloud",
		Tags:           []string{"CI/CD", "Docker", "GitHub Actions", "Deployment"},
		AcceptanceRate: 55,
		Likes:          178,
	},
	{
		ProblemNumber:  19,
		Title:          "Deploy Microservices to Cloud",
		Description:    "Design and deploy a microservices architecture on AWS or Azure with load balancing and monitoring.",
		Difficulty:     model.DifficultyHard,
		Category:       "DevOps & Cloud",
		Tags:           []string{"Microservices", "AWS", "Azure", "Load Balancing"},
		AcceptanceRate: 38,
		Likes:          201,
	},
	{
		ProblemNumber:  20,
		Title:          "Implement Infrastructure as Code",
		Description:    "Use Terraform or CloudFormation to provision and manage cloud infrastructure automatically.",
		Difficulty:     model.DifficultyMedium,
		Category:       "DevOps & Cloud",
		Tags:           []string{"Terraform", "Infrastructure", "CloudFormation", "Automation"},
		AcceptanceRate: 48,
		Likes:          145,
	},
	{
		ProblemNumber:  21,
		Title:          "Build a Recommendation System",
		Description:    "Create a machine learning recommendation system using collaborative filtering and content-based approaches.",
		Difficulty:     model.DifficultyHard,
		Category:       "AI & Machine Learning",
		Tags:           []string{"Machine Learning", "Recommendation", "Python", "Scikit-learn"},
		AcceptanceRate: 35,
		Likes:          289,
	},
	{
		ProblemNumber:  22,
		Title:          "Implement Image Classification",
		Description:    "Build an image classification model using deep learning to identify objects in photos.",
		Difficulty:     model.DifficultyMedium,
		Category:       "AI & Machine Learning",
		Tags:           []string{"Deep Learning", "Computer Vision", "TensorFlow", "CNN"},
		AcceptanceRate: 52,
		Likes:          234,
	},
	{
		ProblemNumber:  23,
		Title:          "Create a Chatbot with NLP",
		Description:    "Develop an intelligent chatbot using natural language processing and sentiment analysis.",
		Difficulty:     model.DifficultyMedium,
		Category:       "AI & Machine Learning",
		Tags:           []string{"NLP", "Chatbot", "Sentiment Analysis", "Python"},
		AcceptanceRate: 58,
		Likes:          198,
	},
	{
		ProblemNumber:  24,
		Title:          "Build a Predictive Analytics Dashboard",
		Description:    "Create a dashboard that predicts user behavior and displays insights using machine learning models.",
		Difficulty:     model.DifficultyMedium,
		Category:       "AI & Machine Learning",
		Tags:           []string{"Predictive Analytics", "Dashboard", "Data Science", "Visualization"},
		AcceptanceRate: 45,
		Likes:          167,
	},
	{
		ProblemNumber:  25,
		Title:          "Implement Time Series Forecasting",
		Description:    "Build a time series forecasting model to predict stock prices or sales trends using ARIMA or LSTM.",
		Difficulty:     model.DifficultyEasy,
		Category:       "AI & Machine Learning",
		Tags:           []string{"Time Series", "Forecasting", "ARIMA", "LSTM"},
		AcceptanceRate: 68,
		Likes:          223,
	},
}
