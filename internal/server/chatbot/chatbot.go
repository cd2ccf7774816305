// Package chatbot selects a canned reply for a visitor message by substring
// keyword matching. This is a fixed rule table, not model inference: rules
// are evaluated top-to-bottom over the lower-cased message and the first
// match wins, so when a message satisfies several groups the earlier one is
// authoritative.
package chatbot

import "strings"

// Fallback is returned when no keyword group matches.
const Fallback = "I'm happy to help you learn more about Sharandeep! You can ask me about his experience, skills, projects, education, or contact information."

type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"experience", "work", "job"},
		reply:    "Sharandeep has worked as a Data Scientist Intern at Afame Technologies where he improved ML model accuracy by 20% and optimized inference speed by 30%. He also worked as an AI Engineer Intern at AWS, where he built and fine-tuned NLP models using Hugging Face and integrated OpenAI API for enhanced functionality.",
	},
	{
		keywords: []string{"skill", "technology", "tech"},
		reply:    "Sharandeep's expertise spans across Python, Machine Learning, NLP, Deep Learning, and cloud deployment. His technical skills include: Frontend (HTML, CSS, JavaScript, React.js), Backend (Python, SQL, FastAPI), AI/ML (Scikit-learn, Transformers, NLP, TensorFlow, Keras), Data Visualization (Matplotlib, Seaborn, Plotly), and Deployment (GitHub, Netlify, Heroku, Hugging Face).",
	},
	{
		keywords: []string{"project", "portfolio"},
		reply:    "Sharandeep has worked on several impressive projects: 1) Heart Disease Prediction using ML & XAI (published at ICOTET 2024), 2) Handwritten Digit & Facial Recognition with CNN achieving 98% accuracy, 3) SQL-Based Swimmer Club Management system handling 500+ members, and 4) AI-Powered Sentiment Analysis using transformer models.",
	},
	{
		keywords: []string{"education", "study", "university"},
		reply:    "Sharandeep is currently pursuing a Master's in Data Science (MPS) at University at Buffalo, NY with a GPA of 3.704. He completed his B.Tech in Electronics and Computer Engineering from Sreenidhi Institute of Science and Technology, Hyderabad with an 8.3 CGPA.",
	},
	{
		keywords: []string{"contact", "reach", "email", "phone"},
		reply:    "You can reach Sharandeep at sharanreddy.adla@gmail.com or +1 (716) 750-9326. He's also active on LinkedIn at https://www.linkedin.com/in/sharanreddyadla. Feel free to connect with him for opportunities, collaborations, or just to say hello!",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! I'm Sharandeep's AI assistant. I'm here to help you learn about his background, skills, projects, and experience. What would you like to know about him?",
	},
	{
		keywords: []string{"publication", "research", "paper"},
		reply:    "Sharandeep has published research on 'Heart Disease Prediction Using ML & XAI' at the ICOTET 2024 conference. This work demonstrates his expertise in explainable AI and healthcare applications of machine learning.",
	},
	{
		keywords: []string{"certification", "certificate"},
		reply:    "Sharandeep holds several certifications including: Cognizant AI Virtual Experience (2023), Microsoft AI Skills Challenge (2023), and IBM ML with Python Level 1 (2022). These certifications showcase his continuous learning in AI and machine learning.",
	},
}

// Reply returns the canned response for message, or Fallback when no
// keyword group matches. The selection is stateless and deterministic.
func Reply(message string) string {
	lower := strings.ToLower(message)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply
			}
		}
	}

	return Fallback
}
