package prompt

// BookPromptTemplate asks for the analysis of one book. Arg: the book title.
const BookPromptTemplate = `Analyze the book "%s" and provide detailed information:
Title:
Author:
Publisher:
Publication Year:
Details: (format, ISBN, pages, language)
Genre:
Summary:
Reviews:
Rating:
Target Audience:
Similar Books: (provide 3 similar books)
Return the response in JSON format.`

// Exemplar turn sent ahead of every request to steer the reply format.
// It is a fixed prompt constant, not conversation memory.
const (
	ExemplarTitle = "The power of your subconscious mind"

	ExemplarQuestion = `Analyze the following book  The power of your subconscious mind  and provide detailed information:
Title:
Author:
Publisher:
Publication Year:
Details: (format, ISBN, pages, language)
Genre:
Summary:
Reviews:
Rating:
Target Audience:
Similar Books: (provide 3 similar books with titles, authors, and reasons for similarity)
in JSON format`

	exemplarAnswerJSON = `[
  {
    "Title": "The Power of Your Subconscious Mind",
    "Author": "Joseph Murphy",
    "Publisher": "Hallmark Library",
    "Publication Year": "1963",
    "Details": {
      "format": "Paperback, Hardcover, Audiobook, Kindle",
      "ISBN": "978-0440500349 (Paperback)",
      "pages": "312",
      "language": "English"
    },
    "Genre": "Self-Help, Spirituality, Personal Development",
    "Summary": "The Power of Your Subconscious Mind explores the potential of the subconscious mind to positively influence a person's life. Joseph Murphy provides practical techniques and principles for harnessing the power of the subconscious to achieve goals, improve health, enhance relationships, and overcome fears. The book emphasizes the importance of positive thinking, visualization, and affirmations in reprogramming the subconscious mind to create a more fulfilling and successful life.",
    "Reviews": "Reviews of the book are generally positive, highlighting its accessibility and practical advice. Many readers find the techniques presented to be helpful in improving their mental and emotional well-being. Some common criticisms include the book's repetitive nature and the lack of scientific evidence to support some of its claims. However, its enduring popularity suggests that many people find value in its message.",
    "Rating": "4.5/5 (Average rating based on various online platforms)",
    "Target Audience": "Individuals interested in self-improvement, personal development, spirituality, and those seeking to improve their mental and emotional well-being. It appeals to those open to exploring the power of positive thinking and the subconscious mind.",
    "Similar Books": [
      {
        "Title": "Think and Grow Rich",
        "Author": "Napoleon Hill",
        "Reason for Similarity": "Both books focus on the power of the mind, positive thinking, and visualization to achieve success and personal fulfillment."
      },
      {
        "Title": "As a Man Thinketh",
        "Author": "James Allen",
        "Reason for Similarity": "Emphasizes the connection between thoughts and life circumstances, advocating for the power of positive thinking and self-mastery."
      },
      {
        "Title": "You Can Heal Your Life",
        "Author": "Louise Hay",
        "Reason for Similarity": "Explores the connection between thoughts, emotions, and physical health, offering affirmations and techniques for healing and self-improvement."
      }
    ]
  }
]`

	// ExemplarAnswer is the model turn, fenced the way the model replies
	ExemplarAnswer = "```json\n" + exemplarAnswerJSON + "\n```"
)
