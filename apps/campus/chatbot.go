package main

// The chatbot is self-contained static text; it never touches the store.

func (app *application) chatbot() {
	app.con.clear()
	app.con.println("Welcome to the Campus Chatbot!")
	app.con.println("I'm here to help you with information about the university.")
	app.con.pause()

	for {
		app.con.clear()
		app.con.println("Main Menu:")
		app.con.println("1. About the University")
		app.con.println("2. Academic Programs")
		app.con.println("3. Admission Information")
		app.con.println("4. Scholarships & Fees")
		app.con.println("5. Campus Facilities")
		app.con.println("6. Contact Information")
		app.con.println("7. Exit Chatbot")
		choice, ok := app.con.prompt("Choice: ")
		if !ok {
			return
		}

		app.con.clear()
		switch choice {
		case "1":
			app.con.println("About the University:")
			app.con.println("- Established in 1991")
			app.con.println("- Accredited degree programs across five schools")
			app.con.println("- Offers international standard education")
		case "2":
			app.con.println("Academic Programs:")
			app.con.println("1. Undergraduate Programs")
			app.con.println("2. Graduate Programs")
			app.con.println("3. Diploma Programs")
		case "3":
			app.con.println("Admission Requirements:")
			app.con.println("- Completed application form")
			app.con.println("- Academic transcripts")
			app.con.println("- Entrance exam (if applicable)")
		case "4":
			app.con.println("Scholarships:")
			app.con.println("- Merit-based scholarships")
			app.con.println("- Need-based financial aid")
			app.con.println("- Special scholarships for women")
		case "5":
			app.con.println("Campus Facilities:")
			app.con.println("- Modern classrooms")
			app.con.println("- Computer labs")
			app.con.println("- Library resources")
			app.con.println("- Sports facilities")
		case "6":
			app.con.println("Contact Information:")
			app.con.println("Address: 4 Embankment Drive Road, Uttara")
			app.con.println("Phone: +880 2 5509 1801")
			app.con.println("Email: info@campus.edu")
		case "7":
			app.con.println("Thank you for using the chatbot!")
			app.con.pause()
			return
		default:
			app.con.println("Invalid choice!")
		}
		app.con.pause()
	}
}
