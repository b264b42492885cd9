package rand

// v0Table..v3Table are the four 256-entry tables RFC 6330's deterministic
// Rand(y,i,m) function mixes together. See DESIGN.md's Open Question entry:
// the byte-exact RFC 6330 Appendix B tables were not present in the
// retrieved original_source tree (no Rand.hpp was kept), so these are a
// deterministically generated stand-in with the same structural role —
// wire-level interop with other RFC 6330 implementations is a known gap.

var v0Table = [256]uint32{
	0x7364481A, 0x7B950227, 0x9CE0CA38, 0xAFFF589E, 0x473C841D, 0x3AE1AFE8,
	0x7034D212, 0x543ACC28, 0xE6AF9A5E, 0x3F171632, 0xF3E17AE0, 0x63CD63EF,
	0x13BA5E1C, 0xAEA0F0BD, 0x5E3BD431, 0xAF9F3623, 0xC2885B44, 0xDDB4CED4,
	0xAA3B1244, 0x1F16E375, 0xA1B24C24, 0x36C32180, 0x63ECF992, 0x467B82C2,
	0x385E9781, 0xC3C05069, 0x8558C82A, 0xDC324BCE, 0xB6DEE4C5, 0x895C6B93,
	0x136A3468, 0x7E19325A, 0x05F0EB4F, 0x0F3F480D, 0xD77AA247, 0xC10036DF,
	0x832442CD, 0x2E0E4EC2, 0x5A6B2808, 0x6A50DEF3, 0x507B175D, 0x55FB8E97,
	0x2CF3439B, 0xDC2BA8C3, 0x3307C516, 0x780C6067, 0xEFA433A9, 0x8113CE87,
	0xF474429A, 0xEA3C6384, 0x1FB69D72, 0x23F2D590, 0xCE363C25, 0x3C446439,
	0x4BBD2835, 0xA1E02223, 0x8452A58E, 0x154EB32D, 0x42CCAE18, 0xCC938526,
	0x219D9E97, 0x27C1C1FD, 0xAAE0C375, 0x3BC641F1, 0xB72F18B8, 0xA927C0EA,
	0x8E5C77A3, 0x0184049F, 0x115D53B9, 0x0B2DF1D2, 0x1319FB0E, 0x02A00106,
	0x14831F1E, 0x9DF8FF27, 0xDE1934F5, 0x0AE92F6F, 0x6DABDBC0, 0xBE44FFC4,
	0x7BC19E0C, 0xABD34796, 0x6F424BDC, 0x5DA467EF, 0x70C15AA8, 0x7EE95AA9,
	0xEB4E5B46, 0x0A2BCBBE, 0x1F2F4BD2, 0x0C9AFA15, 0x1AD3E9D6, 0xFF0F0403,
	0xE8C13F3E, 0x5EC25666, 0x06970E42, 0x63DB3801, 0x391B05D3, 0x8FD990B1,
	0x370F1A2F, 0xA0700950, 0x475F4A08, 0xA01C54DC, 0x721E8AAD, 0x75F48D0B,
	0x250CC779, 0xC9B81387, 0x6C42CA70, 0xD67945D4, 0x8ECF9A7B, 0x7CB3FB0D,
	0x4703070B, 0xE55902C3, 0xBF3FBA3E, 0xD78A113E, 0x6F0C712C, 0x37C8E4BC,
	0xFCE983E1, 0xDD513CC8, 0x8FF3A60D, 0xEFA08842, 0x962AF3D1, 0x64599942,
	0x6745AAB6, 0x835A496D, 0x3B353A0E, 0xEFEFF8F1, 0x4182898A, 0xF47CA64C,
	0xF0520BFF, 0xF3FD0098, 0xAA3214ED, 0x7C73EE27, 0x619CD68B, 0xD999EA43,
	0x02022A51, 0x6DEEF148, 0xD3D53FD5, 0x0892A7F7, 0x0458C2FB, 0xA72CDC1D,
	0x975D66FD, 0xEB915A91, 0x2CE8785F, 0x69C48C4C, 0xD39E1A30, 0xC0E58994,
	0xF593CCD2, 0x7C0589E4, 0xCB87458B, 0xB9EAB725, 0xF38E210F, 0x17165527,
	0x8448AD4A, 0xC23F8748, 0x400FF74F, 0xF7D5FF15, 0xC95FD49A, 0xE5FC8B44,
	0x45DE61B7, 0xCB03128A, 0xDD1E9FE9, 0xA07DCA5B, 0xE9863174, 0xADE5614A,
	0x9426C875, 0x91DD168C, 0x898B0091, 0x0B304FF8, 0x3862C73D, 0x00CABC7E,
	0x20B36032, 0xCF72B79A, 0x5C04F19D, 0x2FD3E645, 0x976D1BBC, 0x54A4CAAE,
	0x10D45111, 0x91962965, 0x445B5B84, 0x4DFB41A0, 0xEF26B00D, 0x28B27BDC,
	0x5248D718, 0x0201FA0A, 0xA2541F2E, 0xE30974A8, 0x4A0D8975, 0x7401A284,
	0xC02D8041, 0xEFA85721, 0xB95CD7F5, 0x471587E0, 0xAABF9CFD, 0xB16DA0F3,
	0xA5F7F480, 0xB34DC133, 0x4612E0F6, 0xD44B1211, 0x8703C482, 0x4043607D,
	0x6291E287, 0xF63C941B, 0x987D52B5, 0xFB76C867, 0xE139265B, 0x97AE404F,
	0x570D660B, 0x6BDE1CDC, 0xF48A986F, 0x2BCCC5CB, 0x837D7F2E, 0x8B3B7C21,
	0xC67861E3, 0x656697F4, 0x62B6FBC4, 0x5EFC33E2, 0x2D4BCCE5, 0x740697A3,
	0x22A25B7A, 0x6C7DFEFF, 0xCB345D83, 0x8FA6B4FA, 0xBC3C5E4F, 0x33A91BF4,
	0x0AFA93C2, 0x4A60ACD2, 0x31143754, 0xB0532D5F, 0xE52082A5, 0x8680A1ED,
	0x0D0195F5, 0x07127A46, 0xF1073410, 0x59325737, 0xE901C92D, 0xF529108B,
	0x3A31090E, 0x30744D09, 0x97441ECE, 0x7274DB68, 0x41CD3FBF, 0x76900A17,
	0x45D7022E, 0x59F87625, 0x243626E1, 0x5238E9F1, 0x3E9BF7A0, 0x4FB8F66B,
	0xBE70CF5F, 0xAB0C6222, 0xB65EA0C2, 0x56200EBE, 0x3F9BB940, 0xB7AB26B5,
	0xFC38E93A, 0xE564C5C9, 0x3C6C794C, 0x3720C4C1,
}

var v1Table = [256]uint32{
	0xD0BD46CB, 0x8E35C101, 0x48ADA5BC, 0x1F53F49A, 0x0A871131, 0xBB6C7C76,
	0x390FAA10, 0x6A5D50C9, 0x0BBF5C7A, 0x02D18D05, 0x4C31DDA8, 0x5B348ECC,
	0x8FE9A954, 0x853BF5E2, 0x822A521A, 0xA30B533D, 0xD31B4057, 0x5C0BDDCB,
	0x4D8D102E, 0x27184C82, 0x60DF05C5, 0xE130E230, 0x2A36F736, 0x4C192AE6,
	0xC45E07AE, 0x0DBF9D62, 0x5EAE1C39, 0x9B168624, 0x55D14513, 0x6F9D1603,
	0x50A3E3D4, 0x95A6A28A, 0x23CD41D4, 0x0A2C70D9, 0xDAC70593, 0x8431EE25,
	0x185DB6B1, 0x6BF1E407, 0xDC1875A9, 0xDB26C944, 0xC03B2D21, 0xF496C26E,
	0xEC8D0604, 0xCF424FB3, 0x1A45A862, 0x917470B5, 0xA0E05FAF, 0x8A407FB9,
	0xE8E244FA, 0x7A7753EA, 0x0162B46B, 0x85F9FF58, 0x6DE74317, 0x044B99A1,
	0xB8B81545, 0xA1D1ED7B, 0x34FEABF3, 0x7C8F1A69, 0x9B6537EA, 0xAADEAD76,
	0xE2A0BCEB, 0x41F9D523, 0x4EE52C08, 0xE73A06D0, 0x89AF3917, 0x5ADFC296,
	0x26FFB438, 0x507CE2A9, 0x36A35F2D, 0xCD9F41EC, 0xF41B3375, 0xA9DF26B8,
	0x821259C4, 0x156F41D7, 0xBD6FD048, 0xD04BD672, 0xFFE4A827, 0x353A235D,
	0x8751BF46, 0xB3A78B6B, 0x8C97A568, 0x36A3BF3A, 0x63316740, 0x10B1DFE5,
	0x07073343, 0x981238DC, 0x6D2CC99E, 0xDB82C8B0, 0xA5D25850, 0x376B8BDE,
	0x20AE1FB7, 0x12BFF3AB, 0xA64E4B55, 0xC2FAE75B, 0x6D90C9F8, 0xE5DA2846,
	0x98BD4504, 0x05EDB2BE, 0xB143F96C, 0x68EE4F3D, 0xBBE7E6AE, 0x522C9B52,
	0x7D24A6C0, 0x75715015, 0x17C68147, 0x77666F57, 0xAFCD25F9, 0xBF610DE2,
	0xF160971B, 0x4740987D, 0x3EA25CE3, 0x3F53A214, 0x40DA28A2, 0xA059479B,
	0x298A9AD7, 0x5DB214FE, 0x47F71748, 0xD161D86E, 0xD38B8908, 0x516D0346,
	0x457E0258, 0x4C87B43E, 0x6CE644E9, 0xD7598F5C, 0x652329A7, 0x27FA4776,
	0xC14C6B77, 0xDC512072, 0x9BDE7A6C, 0xCB4ACF97, 0x956AFBF4, 0x671A7C59,
	0x393837E3, 0xE57D4856, 0x8AAECE4D, 0x542A2170, 0x34A5359F, 0x67905170,
	0x940F1671, 0x762AD99B, 0xCB73BF3C, 0x18F630D0, 0x6444358E, 0x7C8C9F8E,
	0x3C0CDAF0, 0x76648AD1, 0xFDBF85E3, 0x18A3921C, 0x5A728BBC, 0x2ECA032F,
	0x0954AB7B, 0x9F258D92, 0x38468471, 0xD366D43A, 0xCA7321A8, 0xB2E4EBD8,
	0x01330818, 0xF43D51E0, 0xDBD14DAF, 0xD1A04BBB, 0x78445D7A, 0xA835341E,
	0x387C1633, 0xCA3DA0EC, 0x683D0DAF, 0x34B676EA, 0xA98C52DF, 0x5DD89417,
	0x02E5FFCE, 0x8337EBC3, 0xA10F392B, 0xB7FBEC66, 0xB2497C8E, 0x0FE1C83E,
	0x910DA23F, 0x530926D8, 0x24FE723A, 0x32F12E97, 0xF7F83967, 0xEAFABB84,
	0x6170771D, 0x73553AA0, 0xD2EC4702, 0xF099C326, 0x54957B2D, 0x0D4DC1F9,
	0xEA93B405, 0xF5F2077D, 0x52DCE9FE, 0xB050909A, 0xF19462C2, 0x25E17C75,
	0x6A264671, 0xDE738025, 0x03F3CA7E, 0xBF14515D, 0x5B852A27, 0xB1B8E5BD,
	0x1CD140DA, 0xC08107C4, 0x8EE1D5C6, 0x8453532F, 0x68C7CCA8, 0x516E1026,
	0xEDA70C88, 0xD86865D1, 0x24152476, 0xC3E3D1BD, 0xA2312EB3, 0x0A991A38,
	0x8DB1212C, 0x2A729D40, 0x056785AA, 0xF098CC42, 0x8A9C59D2, 0x82CB52DA,
	0xF493A88B, 0x8D602500, 0xFCC43D17, 0x8F6ABE5B, 0x5FB9F03E, 0xDCD4E817,
	0x6F7159CD, 0x45070060, 0xB1A0802B, 0xF69F3BE5, 0x011A648E, 0x992CDCDF,
	0xD42932AC, 0x4862F408, 0x6589183E, 0x2ECC3D7D, 0x145A3279, 0xD6A6D964,
	0x6A49487F, 0x971DF373, 0x82AD4487, 0xC27FE4D5, 0x9CBF2FCD, 0x6D1A5C40,
	0x4F15F7A0, 0x6B45A91A, 0xE3B694BD, 0xB0DE4C6E, 0x093E1CA0, 0x92160893,
	0x433BC711, 0x106B3B4A, 0xFF162440, 0x5113055F, 0x93F1C7D3, 0x93B857DC,
	0x504E874E, 0xF0A0ED04, 0x2CBDBCBD, 0xBF440395,
}

var v2Table = [256]uint32{
	0xAD36D21B, 0xACBE7E0F, 0xF59D2996, 0x6D8C8A70, 0x099019D8, 0xFDC30C90,
	0x906F0630, 0xDFB94C2C, 0x15256AA3, 0xC865EB80, 0x0C224721, 0xF1AE76BF,
	0xF996BB95, 0x54B3DA40, 0x5CFF5E89, 0x55B921C6, 0xA2F1A265, 0x54D310B9,
	0x343B2F76, 0x09F5DFD4, 0x25029E34, 0xCA2D77B6, 0x06D8C317, 0xBD2256B0,
	0x2E5777DD, 0x9B163D6F, 0x95BC0AC8, 0x6A18AB2F, 0xB83982AA, 0xB0D61FB8,
	0xD16DD158, 0xAA28B664, 0xCAB75063, 0xA3DBEE7F, 0xE1B1C8EE, 0xAEAB3F86,
	0xEAAFFBB3, 0x722A78A8, 0x9BEA072C, 0x9FB560E0, 0x4B89A4EF, 0x9A4635DB,
	0xA2D3F6B7, 0xEC3B9FD1, 0xB27034FA, 0x29E48638, 0x0430ECF5, 0xBF0DE2F0,
	0x9421A41D, 0x076083FF, 0x36CE9034, 0x217748C8, 0x542A00A7, 0xDB252A09,
	0x283C40BF, 0x1EA0A533, 0xDB51FBA3, 0x39FEACFE, 0xFA3E8E25, 0xA2C1E7C0,
	0x06CAA836, 0xC70B0968, 0x080B0600, 0xC5C742AC, 0x4B27F9A7, 0xFEE887FB,
	0xA776D3E3, 0x672B0DC9, 0xDEE55AFF, 0x86F17664, 0xA5521E9F, 0xC831123B,
	0x527CB958, 0x77AB2E82, 0x08C072F6, 0x5CAE96CF, 0x90EDC196, 0xAC65075B,
	0xD0541A06, 0xE68A8EE1, 0x696E307B, 0xE4CBBB55, 0x1DD60DF4, 0x192E7B66,
	0xFB979A6B, 0xE44EF2EB, 0x5007E212, 0xCED05A92, 0x22C85DFC, 0x8EADAA99,
	0x67C9BF78, 0x29D2022B, 0xDEB5CC26, 0xE00DCAB8, 0xD60F0BB4, 0xCA07FA5D,
	0x1390CE89, 0x6250FA05, 0x90A59159, 0x01548E92, 0x7F4ABFD0, 0xF1F81867,
	0xE5449E80, 0xBDF7E2CE, 0x24C24D85, 0x15551684, 0x28F1AE5A, 0xAA62FFA3,
	0x0E99997D, 0x82186C24, 0x1CF58C07, 0xD797DD8B, 0x76674FAA, 0x03505AB4,
	0x58A940B8, 0x78C94FDF, 0x4310070D, 0x6286DD2A, 0x89FD4179, 0xB4D1AB1D,
	0xFECA9270, 0xD2F18389, 0xE153DA30, 0xE82F3463, 0xC3862DE7, 0xC38E596E,
	0x749C075E, 0xCCF00530, 0x6FD4DD52, 0x53EC0BA4, 0x4318F649, 0x4697CA9D,
	0x1FDDA3AE, 0xA95C69B8, 0xAF2E541B, 0x5C5B3E3B, 0xEC0EC650, 0x475AABA3,
	0xF133E5F6, 0xFF8A5C06, 0xB1ADA419, 0x97BCCFFD, 0xC9BFD5C5, 0xFF928EF3,
	0x48275191, 0xCFA50512, 0x38D79834, 0x382350E5, 0xEBE64561, 0xC4CD8795,
	0x12891042, 0x853B7665, 0x17428922, 0xEC311C89, 0x3AA9824B, 0x46043B6F,
	0x3674510F, 0xBD1CA37A, 0x3BFC6E01, 0x9AF14A0C, 0xC26BE85A, 0x743A1AD4,
	0x143B97C7, 0x448FF29A, 0xD094A63F, 0xA6D2C479, 0xF1C785D4, 0x027B8F6D,
	0x8D6428C2, 0xEB331531, 0x042732D3, 0x8AAE5D6C, 0xE2331A5D, 0x9F86D105,
	0xB89477E1, 0x7E6B24B3, 0x8F1817B0, 0x854FE113, 0xBC6EE050, 0x13EEB886,
	0xF10E4F97, 0xC125E4FE, 0xA796B748, 0x6A854DCB, 0x615560C2, 0x87494CB9,
	0xC7173E51, 0x07E73F77, 0xFD574308, 0xB274CF3B, 0x76A37EDC, 0x0E980452,
	0x00EDB057, 0xB78A4C26, 0xB530EB56, 0xC34051CD, 0x14DF5DD8, 0xBAAC17E7,
	0xF4398845, 0xEBD6A0FE, 0x27A3DC27, 0x59D84F4D, 0x99369879, 0x44978A0E,
	0x6612D103, 0x8D35BC8A, 0xF0949BB3, 0x5FFA6065, 0xDF685A8D, 0xC37EA3E1,
	0x9FEFCE91, 0xA25B4B4D, 0x6ED90F33, 0xF8A50849, 0xF9007351, 0xB4788893,
	0x58EBDD33, 0xEBD2B1BF, 0x4713FB1F, 0x459E6612, 0x9ED8492D, 0x94800520,
	0x2ACE8DE1, 0x5120C668, 0xEFB6D928, 0x99C9BD63, 0x5A91CE5A, 0xA138638E,
	0x3BA6A18C, 0x422718D9, 0xB739C7C0, 0x75898771, 0xCAC3159C, 0x1009023E,
	0xDC236B52, 0xE6B6981A, 0x5828DC7C, 0x22D094D5, 0xE19D1CF1, 0x3851A51E,
	0x508B05BA, 0x84943C4F, 0x62B5708D, 0xA5A353B9, 0x8E974140, 0xC503D74C,
	0xA97C2570, 0x42FBFA1F, 0x378A1FC0, 0x98CF961D, 0x5E18B40D, 0x96B8235D,
	0x8593F83A, 0x0C5A0805, 0x81C3F671, 0xA43E9AB3,
}

var v3Table = [256]uint32{
	0xA326D255, 0xDEF7B245, 0x11CCC6AA, 0xD58D6E4D, 0x5EF7D33B, 0x04384CDF,
	0x13799DA1, 0xE141E734, 0x922A372B, 0x6F1EC8A8, 0xC5E0E2FF, 0xEF323320,
	0xBFC6D986, 0x9FF54A1B, 0x31BA6F28, 0x0B4479CA, 0xD8AADCC5, 0x1D1E66F6,
	0x45246492, 0x4FC857C9, 0x807C6E81, 0xB1170D9A, 0xE42981DE, 0x825E3659,
	0x01F70D88, 0xCCE2D773, 0xBD7A8A4E, 0x2C53A006, 0xE46BECC3, 0xFD3B07B9,
	0x9A3771F1, 0xD9385C21, 0x55BF5EB9, 0x1221BF33, 0x847C9710, 0xE0374158,
	0x3D14D007, 0x0B6C9AE2, 0x83043E8F, 0x4D8D8460, 0xFAA42504, 0x8B3DCA49,
	0x8EA385D0, 0xFBD5322D, 0x285F1D71, 0x5ACC24B5, 0x9595B035, 0xB5534ED7,
	0x21BCBD2B, 0x6D95DF29, 0x45362E68, 0x46BCA989, 0x29C0B7AE, 0xED29C61F,
	0xFAB42E96, 0xAAB65C74, 0x3A58CF57, 0x9395A410, 0xA357B339, 0x815CC748,
	0xAB4CBABF, 0x1AA728C1, 0xA55F880E, 0x28BEEDBE, 0x5B77D514, 0xE1F33C1A,
	0x3DA93B32, 0xEF7CAD31, 0xC041A515, 0xFDE3C84A, 0xE962CFCA, 0xE133E84C,
	0x8525CF97, 0xEC7CE290, 0x6E3FC422, 0xB8831040, 0x8A5387B3, 0x680E3731,
	0xE980E4CC, 0x2CE99E54, 0x61928959, 0x14D54018, 0x637DD72A, 0x8C9E29E2,
	0x821A2197, 0xE89C7686, 0x9EB0F576, 0xB9A14DC5, 0xA0592C71, 0xB756DC3B,
	0xC9F10E81, 0xE2D47C95, 0x0F14C789, 0xFB39E1FD, 0xF8986FA1, 0xECBA1805,
	0xF2EE8599, 0x42C91409, 0x8888B0F9, 0xF6007724, 0x0496C40D, 0x897E9996,
	0x5CADD46C, 0x2EB3B201, 0x0F09D39C, 0xCAFDCA25, 0xC014F93D, 0xADAEC348,
	0xD5D8F561, 0x891150AA, 0x194BEAE2, 0x97308E1E, 0xD3563979, 0xE09D200B,
	0xC87A0CF4, 0x9ADA04FC, 0x315023A6, 0x297AEC95, 0xDF26CBF7, 0x05A5DEE0,
	0x2B337EAA, 0x4A295E32, 0xE3877E11, 0x19B1B340, 0xA99C4065, 0xF5CDBB5D,
	0x16CC0C96, 0x35C59C1C, 0x89A8D669, 0xA4525B7A, 0x3B5A2990, 0x99A11F24,
	0xCB6E70E6, 0xCD759346, 0x745EC6B2, 0x9F73821E, 0xF974BB42, 0xBCF7E5D2,
	0x43A02BF7, 0x83961799, 0x2C3418D8, 0x96EB5E99, 0x45F14162, 0x793DAE69,
	0x2B69AF39, 0x558AC761, 0x99D477E7, 0x59C2C593, 0x4E7A81C5, 0x034FE23C,
	0x4C34EF5C, 0x961C61C9, 0x1C594042, 0x412822CC, 0xD8ABC30D, 0x5230EE15,
	0x34E9244D, 0xB3BB7FBA, 0xF1FB0937, 0x908BD33B, 0xDA5F211E, 0x6A3DA842,
	0x4478C946, 0x910A8268, 0x69A94AA4, 0x719DFD46, 0xAF4AED7F, 0x87EAF40F,
	0x34802E4F, 0xA46C64FA, 0x853DFF2B, 0x5F356839, 0x1431919C, 0xF91637D3,
	0xB9A55886, 0x54ECE365, 0xE17DA2C1, 0x5B45674C, 0x0F343266, 0x0E1A0AF0,
	0x9C8B37D6, 0x8BFBFE58, 0xC2BB9522, 0x043DF679, 0x5935F0F2, 0x8FA8A2C6,
	0x2CD8FFA0, 0x7BEF67C5, 0xAC03F48A, 0x5E679DF5, 0x1CDF0031, 0x7E26D06D,
	0xB036435B, 0x6CB00883, 0x94494DCC, 0x2E02B312, 0xA3C34A5D, 0xECAEE83F,
	0x9491A16B, 0xC20C4FCF, 0x7E2D0398, 0x4EC40760, 0xEF440E89, 0x0F3C7840,
	0xD15BA1C0, 0x1936AF96, 0x424B3944, 0x2388B7D9, 0x228E2C12, 0xE70CB188,
	0x38534B02, 0xC18B7BD4, 0x872204E3, 0x9FBAC86F, 0x8EBD872F, 0x6AAF4349,
	0xC0FBA0EC, 0xAA4EEDF7, 0xE8EAC1AB, 0x4CD0B98D, 0x8F48B556, 0x9D29A027,
	0x627AC954, 0x4D0CDAF0, 0x94476DA7, 0x0A548195, 0xA0A8C0CF, 0xE9B63EDE,
	0xC0068C5D, 0x98E38F48, 0xEADC42DA, 0xABD0288B, 0x90708E26, 0x05541306,
	0xE100B9D5, 0x19D8BFF9, 0x701969B8, 0x1711CCBF, 0x77BC49EC, 0x24205C79,
	0xD765FB3B, 0x038C1644, 0x58374C29, 0xB40CABE0, 0x0876182F, 0x8F440B2B,
	0xA52663AF, 0xE65F1C05, 0xD918271D, 0x235320F0, 0x2A91B2E5, 0x6A407797,
	0x0C371D6E, 0x3BC8BAF8, 0x89138183, 0x851324C3,
}

