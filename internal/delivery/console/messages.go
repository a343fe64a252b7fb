// messages.go contains message templates shown on the console.

package console

// Error messages.
const (
	msgStoreNotFound  = "Error: Quiz file not found!"
	msgStoreIO        = "Error: File error!"
	msgNoQuestions    = "No questions available yet. Ask an admin to add some."
	msgInvalidBank    = "Error: the question bank is invalid:"
	msgInternalError  = "Error: something went wrong, try again."
	msgInvalidChoice  = "Invalid choice!"
	msgNotANumber     = "Please enter a number."
	msgQuizAbandoned  = "Quiz abandoned."
	msgNoScoresYet    = "No scores yet."
	msgQuestionsEmpty = "The quiz file has no questions."
)

// Prompts and notices.
const (
	msgTitle          = "QUIZ MANAGEMENT SYSTEM"
	msgEnterName      = "Enter your name: "
	msgRoleMenu       = "1. Admin\n2. Player\n3. Registered User\nEnter your role: "
	msgAdminMenu      = "1. Add Question\n2. List Questions\n3. Import Questions\n4. Exit\nEnter choice: "
	msgPlayerMenu     = "1. Start Quiz\n2. Top Scores\n3. Exit\nEnter choice: "
	msgRegistered     = "You can both manage and play the quiz."
	msgEnterQuestion  = "Enter question: "
	msgEnterOption    = "Option %d: "
	msgEnterCorrect   = "Enter correct option number: "
	msgQuestionAdded  = "Question added successfully!"
	msgEnterBankPath  = "Enter question bank file (.yaml or .json): "
	msgImported       = "Imported %d question(s)."
	msgPartialImport  = "Imported %d question(s) before the import failed."
	msgEnterAnswer    = "Enter your answer: "
	msgScore          = "Your score: %s"
	msgTopScores      = "Top scores"
	msgRoleLine       = "I am %s."
	msgGoodbye        = "Program ended. Goodbye, %s!"
	separator         = "--------------------------------------"
	defaultPlayerName = "Guest"
)
