package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// replCommands returns the command that runs the interactive simulation: a
// blocking read-eval loop around the core operations. Every operation runs
// to completion before the next prompt; the loop holds no state of its own.
func replCommands(b *monetaInstance) *cobra.Command {
	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive banking simulation",
		Run: func(cmd *cobra.Command, args []string) {
			runREPL(b)
		},
	}
	return replCmd
}

func printMenu() {
	fmt.Println("\nBanking menu:")
	fmt.Println("1. Create bank")
	fmt.Println("2. Create user")
	fmt.Println("3. Open account")
	fmt.Println("4. Transfer money")
	fmt.Println("5. Request money")
	fmt.Println("6. Deposit")
	fmt.Println("7. Withdraw")
	fmt.Println("8. Show state")
	fmt.Println("9. Quit")
}

func runREPL(b *monetaInstance) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		printMenu()
		choice, ok := readLine(scanner, b.cnf.Simulation.Prompt)
		if !ok {
			return
		}

		switch choice {
		case "1":
			replCreateBank(b, scanner)
		case "2":
			replCreateUser(b, scanner)
		case "3":
			replOpenAccount(b, scanner)
		case "4":
			replTransfer(b, scanner)
		case "5":
			replRequestMoney(b, scanner)
		case "6":
			replDeposit(b, scanner)
		case "7":
			replWithdraw(b, scanner)
		case "8":
			displayState(b)
		case "9":
			fmt.Println("Bye.")
			return
		default:
			fmt.Println("Invalid choice! Pick a number between 1 and 9.")
		}
	}
}

func readLine(scanner *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func readID(scanner *bufio.Scanner, prompt string) (int64, bool) {
	raw, ok := readLine(scanner, prompt)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Println("Invalid id!")
		return 0, false
	}
	return id, true
}

func readAmount(scanner *bufio.Scanner, prompt string) (decimal.Decimal, bool) {
	raw, ok := readLine(scanner, prompt)
	if !ok {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Println("Invalid amount!")
		return decimal.Decimal{}, false
	}
	return amount, true
}

func replCreateBank(b *monetaInstance, scanner *bufio.Scanner) {
	id, ok := readID(scanner, "Bank id: ")
	if !ok {
		return
	}
	name, ok := readLine(scanner, "Bank name: ")
	if !ok {
		return
	}
	in := createBankInput{ID: id, Name: name}
	if err := in.Validate(); err != nil {
		fmt.Println("Error:", err)
		return
	}
	if _, err := b.moneta.CreateBank(in.ID, in.Name); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Bank created!")
}

func replCreateUser(b *monetaInstance, scanner *bufio.Scanner) {
	id, ok := readID(scanner, "User id: ")
	if !ok {
		return
	}
	name, ok := readLine(scanner, "User name: ")
	if !ok {
		return
	}
	in := createUserInput{ID: id, Name: name}
	if err := in.Validate(); err != nil {
		fmt.Println("Error:", err)
		return
	}
	if _, err := b.moneta.CreateUser(in.ID, in.Name); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("User created!")
}

func replOpenAccount(b *monetaInstance, scanner *bufio.Scanner) {
	accountID, ok := readID(scanner, "Account id: ")
	if !ok {
		return
	}
	bankID, ok := readID(scanner, "Bank id: ")
	if !ok {
		return
	}
	userID, ok := readID(scanner, "User id: ")
	if !ok {
		return
	}
	openingBalance, ok := readAmount(scanner, "Opening balance: ")
	if !ok {
		return
	}
	in := openAccountInput{AccountID: accountID, BankID: bankID, UserID: userID, OpeningBalance: openingBalance}
	if err := in.Validate(); err != nil {
		fmt.Println("Error:", err)
		return
	}
	if _, err := b.moneta.OpenAccount(in.AccountID, in.BankID, in.UserID, in.OpeningBalance); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Account opened!")
}

func replTransfer(b *monetaInstance, scanner *bufio.Scanner) {
	sourceID, ok := readID(scanner, "Source account id: ")
	if !ok {
		return
	}
	destinationID, ok := readID(scanner, "Destination account id: ")
	if !ok {
		return
	}
	amount, ok := readAmount(scanner, "Amount to transfer: ")
	if !ok {
		return
	}
	in := movementInput{SourceID: sourceID, DestinationID: destinationID, Amount: amount}
	if err := in.Validate(); err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err := b.moneta.Transfer(in.SourceID, in.DestinationID, in.Amount); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Money transferred!")
}

func replRequestMoney(b *monetaInstance, scanner *bufio.Scanner) {
	sourceID, ok := readID(scanner, "Source account id: ")
	if !ok {
		return
	}
	destinationID, ok := readID(scanner, "Destination account id: ")
	if !ok {
		return
	}
	amount, ok := readAmount(scanner, "Amount to request: ")
	if !ok {
		return
	}
	in := movementInput{SourceID: sourceID, DestinationID: destinationID, Amount: amount}
	if err := in.Validate(); err != nil {
		fmt.Println("Error:", err)
		return
	}
	if _, err := b.moneta.RequestMoney(in.SourceID, in.DestinationID, in.Amount); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Money request recorded!")
}

func replDeposit(b *monetaInstance, scanner *bufio.Scanner) {
	accountID, ok := readID(scanner, "Account id: ")
	if !ok {
		return
	}
	amount, ok := readAmount(scanner, "Amount to deposit: ")
	if !ok {
		return
	}
	in := accountAmountInput{AccountID: accountID, Amount: amount}
	if err := in.Validate(); err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err := b.moneta.Deposit(in.AccountID, in.Amount); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Money deposited!")
}

func replWithdraw(b *monetaInstance, scanner *bufio.Scanner) {
	accountID, ok := readID(scanner, "Account id: ")
	if !ok {
		return
	}
	amount, ok := readAmount(scanner, "Amount to withdraw: ")
	if !ok {
		return
	}
	in := accountAmountInput{AccountID: accountID, Amount: amount}
	if err := in.Validate(); err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err := b.moneta.Withdraw(in.AccountID, in.Amount); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Money withdrawn!")
}

func displayState(b *monetaInstance) {
	precision := b.cnf.Simulation.DisplayPrecision
	snap := b.moneta.Snapshot()

	fmt.Println("\nCurrent state:")
	fmt.Println("Banks:")
	for _, bank := range snap.Banks {
		fmt.Printf("  [%d] %s accounts=%v\n", bank.BankID, bank.Name, bank.AccountIDs)
	}
	fmt.Println("Users:")
	for _, user := range snap.Users {
		fmt.Printf("  [%d] %s accounts=%v\n", user.UserID, user.Name, user.AccountIDs)
	}
	fmt.Println("Accounts:")
	for _, account := range snap.Accounts {
		fmt.Printf("  [%d] balance=%s bank=%d owners=%v\n",
			account.AccountID, account.Balance.StringFixed(precision), account.BankID, account.OwnerIDs)
	}
	fmt.Println("Requests:")
	for _, request := range snap.Requests {
		fmt.Printf("  %d -> %d amount=%s status=%s\n",
			request.Source, request.Destination, request.Amount.StringFixed(precision), request.Status)
	}
}
