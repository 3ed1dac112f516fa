package notify

// EventMessage renders the congratulation text delivered when an occasion
// fires. totalAmount is expected to be currency-formatted already.
func EventMessage(firstName, lastName, wishList, groupName, occasionName, totalAmount string) string {
	return "Congratulations " + firstName + " " + lastName + "! " +
		totalAmount + " has been contributed by " + groupName +
		" for " + occasionName + ". Please select a gift from your wish list at " +
		wishList + "."
}
